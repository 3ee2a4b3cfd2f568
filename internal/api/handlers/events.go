/**
 * @description
 * Event API handlers.
 * Exposes the reconciled per-game event records for each sport.
 *
 * @dependencies
 * - github.com/gofiber/fiber/v2
 * - backend/internal/services
 */

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oddslens/backend/internal/services"
)

type EventsHandler struct {
	Service *services.EventsService
}

func NewEventsHandler(service *services.EventsService) *EventsHandler {
	return &EventsHandler{Service: service}
}

// ListEvents returns the reconciled events for a sport
// GET /api/v1/:sport/events
func (h *EventsHandler) ListEvents(c *fiber.Ctx) error {
	cfg, err := sportFromParams(c)
	if cfg == nil {
		return err
	}

	events, err := h.Service.GetEvents(c.Context(), cfg)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch events",
		})
	}
	return c.JSON(events)
}

// GetEvent returns one reconciled event by ticker
// GET /api/v1/:sport/events/:event_ticker
func (h *EventsHandler) GetEvent(c *fiber.Ctx) error {
	cfg, err := sportFromParams(c)
	if cfg == nil {
		return err
	}

	record, err := h.Service.FindEvent(c.Context(), cfg, c.Params("event_ticker"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch events",
		})
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Unknown event: " + c.Params("event_ticker"),
		})
	}
	return c.JSON(record)
}
