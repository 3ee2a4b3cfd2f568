/**
 * @description
 * Odds comparison API handlers.
 * Pairs a reconciled event with its sportsbook counterpart and returns
 * the per-book quotes plus the cross-book consensus.
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

type OddsHandler struct {
	Events *services.EventsService
	Odds   *services.OddsService
}

func NewOddsHandler(events *services.EventsService, odds *services.OddsService) *OddsHandler {
	return &OddsHandler{Events: events, Odds: odds}
}

// GetEventOdds returns the sportsbook comparison for one event
// GET /api/v1/:sport/events/:event_ticker/odds
func (h *OddsHandler) GetEventOdds(c *fiber.Ctx) error {
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

	comparison, err := h.Odds.CompareEvent(c.Context(), cfg, record)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch sportsbook odds",
		})
	}
	return c.JSON(comparison)
}
