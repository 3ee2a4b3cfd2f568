/**
 * @description
 * Market detail API handlers.
 * Exposes per-contract candlestick history and the live orderbook,
 * proxied from the exchange with prices already normalized to
 * probabilities.
 *
 * @dependencies
 * - github.com/gofiber/fiber/v2
 * - backend/internal/kalshi
 */

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oddslens/backend/internal/kalshi"
)

type MarketsHandler struct {
	Kalshi *kalshi.Client
}

func NewMarketsHandler(client *kalshi.Client) *MarketsHandler {
	return &MarketsHandler{Kalshi: client}
}

// GetCandlesticks returns price history for one contract
// GET /api/v1/:sport/markets/:ticker/candlesticks
func (h *MarketsHandler) GetCandlesticks(c *fiber.Ctx) error {
	cfg, err := sportFromParams(c)
	if cfg == nil {
		return err
	}

	periodInterval := c.QueryInt("period_interval", 60)
	daysBack := c.QueryInt("days_back", 7)

	candles, err := h.Kalshi.GetCandlesticks(c.Context(), cfg.KalshiSeries, c.Params("ticker"), periodInterval, daysBack)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch candlesticks",
		})
	}
	return c.JSON(candles)
}

// GetOrderbook returns the live orderbook for one contract
// GET /api/v1/:sport/markets/:ticker/orderbook
func (h *MarketsHandler) GetOrderbook(c *fiber.Ctx) error {
	if cfg, err := sportFromParams(c); cfg == nil {
		return err
	}

	book, err := h.Kalshi.GetOrderbook(c.Context(), c.Params("ticker"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch orderbook",
		})
	}
	return c.JSON(book)
}
