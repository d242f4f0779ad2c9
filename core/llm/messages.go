package llm

// Message roles. The conversation passed to the model is an ordered,
// append-only sequence of these turns; turns are never mutated or removed
// once appended.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is a single conversation turn.
type Message struct {
	Role    string
	Content string
	// ToolCalls is set on assistant turns that request tool invocations.
	ToolCalls []ToolCall
	// ToolCallID is set on tool turns and must equal the ID of the
	// originating ToolCall.
	ToolCallID string
}

// ToolCall is a single tool invocation requested by the model.
type ToolCall struct {
	// ID is the opaque call identifier assigned by the model.
	ID string
	// Name is the tool to invoke.
	Name string
	// Args holds the decoded invocation arguments.
	Args map[string]any
}

// Completion is the outcome of one model call: either a final textual answer,
// a set of requested tool calls, or both.
type Completion struct {
	Text      string
	ToolCalls []ToolCall
}

// SystemMessage builds a system turn.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage builds a user turn.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage builds an assistant turn from a completion.
func AssistantMessage(c *Completion) Message {
	return Message{Role: RoleAssistant, Content: c.Text, ToolCalls: c.ToolCalls}
}

// ToolMessage builds a tool-result turn for the given call ID.
func ToolMessage(callID, content string) Message {
	return Message{Role: RoleTool, Content: content, ToolCallID: callID}
}
