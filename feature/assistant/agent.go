package assistant

import (
	"context"
	"errors"
	"fmt"

	"storage-assistant/core/llm"

	"go.uber.org/zap"
)

// systemPrompt describes the assistant's capabilities to the model. It
// enumerates every registered tool so the model knows what it may request.
const systemPrompt = `You are an intelligent assistant capable of interacting with object storage. You can perform the following tasks:
	1. **List all buckets**: Provide the names and creation dates of all the buckets in the account.
	2. **List objects in a bucket**: Given a bucket name, list all objects (files) in that bucket along with their sizes.
	3. **Upload a file to a bucket**: Given a local file path and bucket name, upload the file to the specified bucket.
	4. **Download a file from a bucket**: Given a file and bucket name, download the file from the bucket to the local system.
	5. **Remove a file from a bucket**: Given a file and bucket name, remove the file from the bucket.
	6. **Search for objects**: Given a search term, find objects across all buckets that match the search term.
`

// Agent drives one request/response cycle: it builds the conversation, lets
// the model plan tool invocations, executes them in order, and feeds the
// results back for a synthesized answer. The agent is stateless across
// cycles; every query starts a fresh conversation.
type Agent struct {
	gateway  llm.Gateway
	registry *Registry
	logger   *zap.Logger
}

// NewAgent creates an agent around a model gateway and a tool registry.
func NewAgent(gateway llm.Gateway, registry *Registry, logger *zap.Logger) *Agent {
	return &Agent{gateway: gateway, registry: registry, logger: logger}
}

// RunCycle processes a single user query and returns the final answer text.
//
// The conversation is an append-only sequence: system and user turns, the
// model's assistant turn, one tool-result turn per requested invocation in
// the exact order the model emitted them, and finally the second model call
// that produces the answer. A later tool call never starts before the
// previous call's result is appended. If the model itself fails, the cycle
// aborts; tool execution is never resumed on a broken conversation.
func (a *Agent) RunCycle(ctx context.Context, query string) (string, error) {
	conversation := []llm.Message{
		llm.SystemMessage(systemPrompt),
		llm.UserMessage(query),
	}

	first, err := a.gateway.Complete(ctx, conversation, a.registry.Specs())
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}
	conversation = append(conversation, llm.AssistantMessage(first))

	if len(first.ToolCalls) == 0 {
		return first.Text, nil
	}

	for _, call := range first.ToolCalls {
		output, err := a.registry.Execute(ctx, call.Name, call.Args)
		if err != nil {
			if !errors.Is(err, ErrUnknownTool) {
				return "", err
			}
			a.logger.Warn("Model requested unknown tool", zap.String("tool", call.Name))
			output = fmt.Sprintf("Tool '%s' is not available.", call.Name)
		} else {
			a.logger.Debug("Executed tool",
				zap.String("tool", call.Name), zap.String("call_id", call.ID))
		}
		conversation = append(conversation, llm.ToolMessage(call.ID, output))
	}

	second, err := a.gateway.Complete(ctx, conversation, a.registry.Specs())
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}
	return second.Text, nil
}
