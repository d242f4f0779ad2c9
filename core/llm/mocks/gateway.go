package mocks

import (
	"context"

	"storage-assistant/core/llm"

	"github.com/stretchr/testify/mock"
)

// Gateway is a mock implementation of llm.Gateway
type Gateway struct {
	mock.Mock
}

func (m *Gateway) Complete(ctx context.Context, messages []llm.Message, tools []llm.ToolSpec) (*llm.Completion, error) {
	args := m.Called(ctx, messages, tools)
	if c, ok := args.Get(0).(*llm.Completion); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
