package assistant

import (
	"storage-assistant/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Recorder persists a completed exchange. The history feature implements it;
// a nil recorder disables recording.
type Recorder interface {
	Record(rayID, query, answer string) error
}

// Handler handles HTTP requests for the assistant.
type Handler struct {
	agent    *Agent
	recorder Recorder
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(agent *Agent, recorder Recorder, log *zap.Logger) *Handler {
	return &Handler{agent: agent, recorder: recorder, logger: log}
}

// RegisterRoutes registers the assistant routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/chat", h.HandleChat)
}

type chatRequest struct {
	Query string `json:"query"`
}

type chatResponse struct {
	Answer string `json:"answer"`
	RayID  string `json:"ray_id,omitempty"`
}

// HandleChat runs one assistant cycle for the posted query.
// @Summary Ask the storage assistant
// @Description Translates a natural-language query into storage operations and returns a synthesized answer.
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body chatRequest true "Query"
// @Success 200 {object} chatResponse "Answer"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Model Unavailable"
// @Router /chat [post]
func (h *Handler) HandleChat(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req chatRequest
	if err := c.BodyParser(&req); err != nil || req.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "a non-empty 'query' field is required"})
	}

	l.Info("Running assistant cycle", zap.Int("query_len", len(req.Query)))

	answer, err := h.agent.RunCycle(c.Context(), req.Query)
	if err != nil {
		// The user gets a single short failure message, never a protocol trace.
		l.Error("Assistant cycle failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "the assistant could not process this request",
		})
	}

	rayID, _ := c.Locals("ray_id").(string)
	if h.recorder != nil {
		if err := h.recorder.Record(rayID, req.Query, answer); err != nil {
			l.Warn("Failed to record exchange", zap.Error(err))
		}
	}

	return c.JSON(chatResponse{Answer: answer, RayID: rayID})
}
