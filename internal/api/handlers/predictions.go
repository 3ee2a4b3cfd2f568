/**
 * @description
 * Community prediction API handlers.
 * Accepts anonymous picks and exposes the per-event crowd consensus.
 *
 * @dependencies
 * - github.com/gofiber/fiber/v2
 * - backend/internal/services
 */

package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/oddslens/backend/internal/services"
)

type PredictionsHandler struct {
	Service *services.PredictionService
}

func NewPredictionsHandler(service *services.PredictionService) *PredictionsHandler {
	return &PredictionsHandler{Service: service}
}

// SubmitPrediction records (or replaces) a session's pick for a game
// POST /api/v1/predictions
func (h *PredictionsHandler) SubmitPrediction(c *fiber.Ctx) error {
	var input services.PredictionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if input.EventTicker == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "event_ticker is required",
		})
	}

	prediction, err := h.Service.SubmitPrediction(c.Context(), input)
	if err != nil {
		status := fiber.StatusBadRequest
		if strings.Contains(err.Error(), "failed to store") {
			status = fiber.StatusInternalServerError
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(prediction)
}

// ListPredictions returns every stored pick for one event
// GET /api/v1/predictions/:event_ticker
func (h *PredictionsHandler) ListPredictions(c *fiber.Ctx) error {
	predictions, err := h.Service.GetPredictions(c.Context(), c.Params("event_ticker"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch predictions",
		})
	}
	return c.JSON(predictions)
}

// GetConsensus returns the crowd's aggregate lean for one event
// GET /api/v1/predictions/:event_ticker/consensus
func (h *PredictionsHandler) GetConsensus(c *fiber.Ctx) error {
	consensus, err := h.Service.GetConsensus(c.Context(), c.Params("event_ticker"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute consensus",
		})
	}
	return c.JSON(consensus)
}
