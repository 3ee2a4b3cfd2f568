/**
 * @description
 * Game result API handlers.
 * Looks up the scoreboard outcome for an event and judges the market's
 * pre-game favorite against it.
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

type ResultsHandler struct {
	Events  *services.EventsService
	Results *services.ResultsService
}

func NewResultsHandler(events *services.EventsService, results *services.ResultsService) *ResultsHandler {
	return &ResultsHandler{Events: events, Results: results}
}

// GetEventResult returns the final (or in-progress) outcome for one event
// GET /api/v1/:sport/events/:event_ticker/result
func (h *ResultsHandler) GetEventResult(c *fiber.Ctx) error {
	cfg, err := sportFromParams(c)
	if cfg == nil {
		return err
	}

	record, err := h.Events.FindEvent(c.Context(), cfg, c.Params("event_ticker"))
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

	verdict, err := h.Results.GetEventResult(c.Context(), cfg, record)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to query scoreboard",
		})
	}
	if verdict == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No scoreboard entry found for event",
		})
	}
	return c.JSON(verdict)
}
