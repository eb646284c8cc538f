package events

import (
	"errors"

	"event-state/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for event state.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the event state routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/state", h.HandleState)
	app.Get("/state/:id", h.HandleStateEvent)
	app.Get("/events", h.HandleEvents)
	app.Get("/health", h.HandleHealth)
}

// HandleState returns the client view.
// @Summary Get Event State
// @Description Returns every visible event keyed by id, with resolved names and the current score.
// @Tags state
// @Produce json
// @Success 200 {object} map[string]reconcile.ClientEvent "Client View"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /state [get]
func (h *Handler) HandleState(c *fiber.Ctx) error {
	view := h.service.State()
	logger.WithRayID(h.service.logger, c).Debug("Serving state", zap.Int("events", len(view)))
	return c.JSON(view)
}

// HandleStateEvent returns one event of the client view.
// @Summary Get Event
// @Description Returns a single visible event. Removed events are reported as not found.
// @Tags state
// @Produce json
// @Param id path string true "Sport event id"
// @Success 200 {object} reconcile.ClientEvent "Event"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /state/{id} [get]
func (h *Handler) HandleStateEvent(c *fiber.Ctx) error {
	id := c.Params("id")
	event, err := h.service.StateEvent(id)
	if errors.Is(err, ErrEventNotFound) {
		logger.WithRayID(h.service.logger, c).Debug("Event not found", zap.String("event_id", id))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not Found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(event)
}

// HandleEvents returns the visible canonical events.
// @Summary List Events
// @Description Returns visible events in canonical form, sorted by id, including per-period scores.
// @Tags state
// @Produce json
// @Success 200 {array} reconcile.Event "Events"
// @Router /events [get]
func (h *Handler) HandleEvents(c *fiber.Ctx) error {
	return c.JSON(h.service.Events())
}

// HandleHealth reports engine statistics.
// @Summary Health
// @Description Returns event counts, mapping table size and the time of the last merge.
// @Tags health
// @Produce json
// @Success 200 {object} events.Health "Health"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(h.service.Health())
}
