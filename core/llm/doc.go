// Package llm provides the language model gateway.
//
// It defines the conversation turn model (system, user, assistant, tool) and
// the ToolSpec type used to declare callable tools to the model, plus a
// Client that speaks the OpenAI-compatible chat completions protocol. The
// default configuration targets Gemini's compatibility endpoint, but any
// provider exposing the same wire shape works.
//
// # Gateway Interface
//
// The Gateway interface exposes a single capability:
//
//	Complete(ctx, messages, tools) (*Completion, error)
//
// A Completion carries the model's text and zero or more requested tool
// calls. Gateway failures (network, auth, quota) surface as errors and abort
// the caller's cycle; no retry policy is applied at this layer.
package llm
