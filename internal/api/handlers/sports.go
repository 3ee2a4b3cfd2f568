/**
 * @description
 * Sport registry handlers and shared sport-param resolution.
 *
 * @dependencies
 * - github.com/gofiber/fiber/v2
 * - backend/internal/sports
 */

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oddslens/backend/internal/sports"
)

// ListSports returns every supported sport and its display name
// GET /api/v1/sports
func ListSports(c *fiber.Ctx) error {
	type sportInfo struct {
		Key         string `json:"key"`
		DisplayName string `json:"display_name"`
	}

	all := sports.All()
	out := make([]sportInfo, 0, len(all))
	for _, cfg := range all {
		out = append(out, sportInfo{Key: cfg.Key, DisplayName: cfg.DisplayName})
	}
	return c.JSON(out)
}

// sportFromParams resolves the :sport path segment against the registry.
// Unknown sports get a 404 written; the caller just returns the error.
func sportFromParams(c *fiber.Ctx) (*sports.Config, error) {
	key := c.Params("sport")
	cfg := sports.Get(key)
	if cfg == nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Unknown sport: " + key,
		})
	}
	return cfg, nil
}
