package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotConfigured is returned when the model API key is absent.
var ErrNotConfigured = errors.New("model api key not configured")

// Gateway is the single capability the orchestrator needs from a language
// model: given a conversation and a set of declared tools, produce either a
// final textual answer or a set of requested tool invocations.
type Gateway interface {
	Complete(ctx context.Context, messages []Message, tools []ToolSpec) (*Completion, error)
}

// Client talks to an OpenAI-compatible chat completions endpoint. The default
// configuration targets Gemini's compatibility surface.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a model client from the configuration. It fails fast when
// the API key is missing; there is no degraded mode without a model.
func NewClient(cfg Config) (*Client, error) {
	if cfg.ApiKey == "" {
		return nil, ErrNotConfigured
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}

	return &Client{
		apiKey:  cfg.ApiKey,
		model:   cfg.Name,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}, nil
}

// Wire types for the chat completions protocol. Tool call arguments travel as
// a JSON-encoded string, not an object.
type wireMessage struct {
	Role       string         `json:"role"`
	Content    string         `json:"content"`
	ToolCalls  []wireToolCall `json:"tool_calls,omitempty"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
}

type wireToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function wireFunction `json:"function"`
}

type wireFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type wireTool struct {
	Type     string      `json:"type"`
	Function wireToolDef `json:"function"`
}

type wireToolDef struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Complete performs one model call. Any transport failure, non-200 status or
// unparsable reply is reported as an error; the caller aborts its cycle
// rather than retrying.
func (c *Client) Complete(ctx context.Context, messages []Message, tools []ToolSpec) (*Completion, error) {
	reqBody := map[string]any{
		"model":    c.model,
		"messages": encodeMessages(messages),
		"stream":   false,
	}
	if len(tools) > 0 {
		wireTools := make([]wireTool, 0, len(tools))
		for _, t := range tools {
			wireTools = append(wireTools, wireTool{
				Type: "function",
				Function: wireToolDef{
					Name:        t.Name,
					Description: t.Description,
					Parameters:  t.Schema(),
				},
			})
		}
		reqBody["tools"] = wireTools
		reqBody["tool_choice"] = "auto"
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var apiResp struct {
		Choices []struct {
			Message wireMessage `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}
	if len(apiResp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned from model")
	}

	return decodeCompletion(apiResp.Choices[0].Message)
}

func encodeMessages(messages []Message) []wireMessage {
	out := make([]wireMessage, 0, len(messages))
	for _, m := range messages {
		wm := wireMessage{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
		}
		for _, tc := range m.ToolCalls {
			args, err := json.Marshal(tc.Args)
			if err != nil {
				args = []byte("{}")
			}
			wm.ToolCalls = append(wm.ToolCalls, wireToolCall{
				ID:   tc.ID,
				Type: "function",
				Function: wireFunction{
					Name:      tc.Name,
					Arguments: string(args),
				},
			})
		}
		out = append(out, wm)
	}
	return out
}

func decodeCompletion(m wireMessage) (*Completion, error) {
	completion := &Completion{Text: m.Content}

	for _, wc := range m.ToolCalls {
		args := map[string]any{}
		if wc.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(wc.Function.Arguments), &args); err != nil {
				return nil, fmt.Errorf("malformed arguments for tool %s: %w", wc.Function.Name, err)
			}
		}
		id := wc.ID
		if id == "" {
			// Some compatibility endpoints omit call IDs; results still need
			// a stable identifier to be matched against.
			id = "call_" + uuid.NewString()
		}
		completion.ToolCalls = append(completion.ToolCalls, ToolCall{
			ID:   id,
			Name: wc.Function.Name,
			Args: args,
		})
	}

	return completion, nil
}
