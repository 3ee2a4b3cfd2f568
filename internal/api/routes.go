/**
 * @description
 * API Route definitions.
 * Sets up the router groups and assigns handlers.
 *
 * @dependencies
 * - github.com/gofiber/fiber/v2
 * - backend/internal/api/handlers
 * - backend/internal/services
 */

package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/oddslens/backend/internal/api/handlers"
	"github.com/oddslens/backend/internal/config"
	"github.com/oddslens/backend/internal/espn"
	"github.com/oddslens/backend/internal/kalshi"
	"github.com/oddslens/backend/internal/oddsfeed"
	"github.com/oddslens/backend/internal/services"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {
	// 1. Initialize upstream clients
	kalshiClient := kalshi.NewClient(cfg)
	oddsClient := oddsfeed.NewClient(cfg)
	espnClient := espn.NewClient(cfg)

	// 2. Initialize Services
	eventsService := services.NewEventsService(db, rdb, kalshiClient)
	oddsService := services.NewOddsService(rdb, oddsClient)
	resultsService := services.NewResultsService(db, espnClient)
	predictionService := services.NewPredictionService(db)

	// 3. Initialize Handlers
	eventsHandler := handlers.NewEventsHandler(eventsService)
	oddsHandler := handlers.NewOddsHandler(eventsService, oddsService)
	resultsHandler := handlers.NewResultsHandler(eventsService, resultsService)
	marketsHandler := handlers.NewMarketsHandler(kalshiClient)
	predictionsHandler := handlers.NewPredictionsHandler(predictionService)

	// 4. Define Routes
	api := app.Group("/api")
	v1 := api.Group("/v1")

	v1.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1.Get("/sports", handlers.ListSports)

	// Prediction Routes (registered before the :sport wildcard)
	predictions := v1.Group("/predictions")
	predictions.Post("/", predictionsHandler.SubmitPrediction)
	predictions.Get("/:event_ticker", predictionsHandler.ListPredictions)
	predictions.Get("/:event_ticker/consensus", predictionsHandler.GetConsensus)

	// Per-sport Routes
	sport := v1.Group("/:sport")
	sport.Get("/events", eventsHandler.ListEvents)
	sport.Get("/events/:event_ticker", eventsHandler.GetEvent)
	sport.Get("/events/:event_ticker/odds", oddsHandler.GetEventOdds)
	sport.Get("/events/:event_ticker/result", resultsHandler.GetEventResult)
	sport.Get("/markets/:ticker/candlesticks", marketsHandler.GetCandlesticks)
	sport.Get("/markets/:ticker/orderbook", marketsHandler.GetOrderbook)
}
