package assistant

import (
	"context"
	"errors"
	"testing"

	"storage-assistant/core/llm"
	llmmocks "storage-assistant/core/llm/mocks"
	"storage-assistant/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupAgent(t *testing.T) (*Agent, *llmmocks.Gateway, *mocks.Client) {
	gateway := new(llmmocks.Gateway)
	mockClient := new(mocks.Client)

	agent, err := NewDefaultAgent(gateway, mockClient, zap.NewNop())
	require.NoError(t, err)
	return agent, gateway, mockClient
}

func TestAgent_RunCycle_NoToolCalls(t *testing.T) {
	agent, gateway, mockClient := setupAgent(t)

	gateway.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return(&llm.Completion{Text: "Buckets hold objects."}, nil).Once()

	answer, err := agent.RunCycle(context.Background(), "what is a bucket?")
	require.NoError(t, err)

	// The first response's text is returned unchanged; no second model call
	// and no storage operation happens.
	assert.Equal(t, "Buckets hold objects.", answer)
	gateway.AssertNumberOfCalls(t, "Complete", 1)
	mockClient.AssertNotCalled(t, "ListBuckets", mock.Anything)
	mockClient.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
}

func TestAgent_RunCycle_ConversationShape(t *testing.T) {
	agent, gateway, _ := setupAgent(t)

	var firstMessages []llm.Message
	gateway.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			firstMessages = args.Get(1).([]llm.Message)
		}).
		Return(&llm.Completion{Text: "hi"}, nil).Once()

	_, err := agent.RunCycle(context.Background(), "hello")
	require.NoError(t, err)

	require.Len(t, firstMessages, 2)
	assert.Equal(t, llm.RoleSystem, firstMessages[0].Role)
	assert.Equal(t, llm.RoleUser, firstMessages[1].Role)
	assert.Equal(t, "hello", firstMessages[1].Content)

	// The declared tool specs accompany the call.
	specs := gateway.Calls[0].Arguments.Get(2).([]llm.ToolSpec)
	assert.Len(t, specs, 6)
}

func TestAgent_RunCycle_ToolOrdering(t *testing.T) {
	agent, gateway, mockClient := setupAgent(t)

	mockClient.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo{{Name: "A"}}, nil)
	mockClient.On("ListObjects", mock.Anything, "A", mock.Anything).Return(objectChan(
		minio.ObjectInfo{Key: "x.txt", Size: 10},
	))

	first := &llm.Completion{ToolCalls: []llm.ToolCall{
		{ID: "call_1", Name: "list_buckets", Args: map[string]any{}},
		{ID: "call_2", Name: "list_objects", Args: map[string]any{"bucket_name": "A"}},
	}}

	var secondMessages []llm.Message
	gateway.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return(first, nil).Once()
	gateway.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			secondMessages = args.Get(1).([]llm.Message)
		}).
		Return(&llm.Completion{Text: "You have one bucket with one file."}, nil).Once()

	answer, err := agent.RunCycle(context.Background(), "what do I have?")
	require.NoError(t, err)
	assert.Equal(t, "You have one bucket with one file.", answer)

	// system, user, assistant, then one tool result per request in the
	// order the model emitted them, each with a matching call ID.
	require.Len(t, secondMessages, 5)
	assert.Equal(t, llm.RoleAssistant, secondMessages[2].Role)
	require.Len(t, secondMessages[2].ToolCalls, 2)

	assert.Equal(t, llm.RoleTool, secondMessages[3].Role)
	assert.Equal(t, "call_1", secondMessages[3].ToolCallID)
	assert.Equal(t, llm.RoleTool, secondMessages[4].Role)
	assert.Equal(t, "call_2", secondMessages[4].ToolCallID)
}

func TestAgent_RunCycle_UnknownTool(t *testing.T) {
	agent, gateway, _ := setupAgent(t)

	first := &llm.Completion{ToolCalls: []llm.ToolCall{
		{ID: "call_1", Name: "delete_account", Args: map[string]any{}},
	}}

	var secondMessages []llm.Message
	gateway.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return(first, nil).Once()
	gateway.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			secondMessages = args.Get(1).([]llm.Message)
		}).
		Return(&llm.Completion{Text: "I cannot do that."}, nil).Once()

	answer, err := agent.RunCycle(context.Background(), "delete my account")
	require.NoError(t, err)
	assert.Equal(t, "I cannot do that.", answer)

	// The unknown tool gets a synthesized result naming it; the cycle survives.
	require.Len(t, secondMessages, 4)
	assert.Equal(t, "call_1", secondMessages[3].ToolCallID)
	assert.Contains(t, secondMessages[3].Content, "delete_account")
}

func TestAgent_RunCycle_GatewayFailure(t *testing.T) {
	t.Run("FirstCall", func(t *testing.T) {
		agent, gateway, mockClient := setupAgent(t)

		gateway.On("Complete", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("quota exceeded")).Once()

		_, err := agent.RunCycle(context.Background(), "anything")
		assert.ErrorContains(t, err, "model call failed")
		mockClient.AssertNotCalled(t, "ListBuckets", mock.Anything)
	})

	t.Run("SecondCall", func(t *testing.T) {
		agent, gateway, mockClient := setupAgent(t)

		mockClient.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo{}, nil)

		gateway.On("Complete", mock.Anything, mock.Anything, mock.Anything).
			Return(&llm.Completion{ToolCalls: []llm.ToolCall{
				{ID: "call_1", Name: "list_buckets", Args: map[string]any{}},
			}}, nil).Once()
		gateway.On("Complete", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("connection reset")).Once()

		_, err := agent.RunCycle(context.Background(), "list my buckets")
		assert.ErrorContains(t, err, "model call failed")
	})
}
