package assistant

import (
	"storage-assistant/core/llm"
	"storage-assistant/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewDefaultAgent builds an agent backed by the full storage toolset. The
// storage and model handles are constructed by the caller and shared
// read-only.
func NewDefaultAgent(gateway llm.Gateway, client storage.Client, logger *zap.Logger) (*Agent, error) {
	manager := NewBucketManager(client, logger)

	registry := NewRegistry()
	if err := RegisterStorageTools(registry, manager, logger); err != nil {
		return nil, err
	}

	return NewAgent(gateway, registry, logger), nil
}

// NewFeature wires the assistant: bucket manager, tool registry, agent and
// HTTP handler.
func NewFeature(gateway llm.Gateway, client storage.Client, recorder Recorder, logger *zap.Logger) (*Feature, error) {
	agent, err := NewDefaultAgent(gateway, client, logger)
	if err != nil {
		return nil, err
	}
	return &Feature{handler: NewHandler(agent, recorder, logger)}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "assistant"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
