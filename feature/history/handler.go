package history

import (
	"storage-assistant/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the exchange history.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/history", h.HandleRecent)
}

// HandleRecent lists recent exchanges.
// @Summary List recent exchanges
// @Description Returns the most recent question/answer exchanges, newest first.
// @Tags history
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of exchanges to return"
// @Success 200 {array} Exchange "Exchanges"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history [get]
func (h *Handler) HandleRecent(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	exchanges, err := h.service.Recent(c.QueryInt("limit"))
	if err != nil {
		l.Error("Failed to list exchanges", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(exchanges)
}
