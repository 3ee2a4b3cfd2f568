/**
 * @description
 * Worker Service Entry Point.
 * Responsible for background tasks:
 * 1. Periodically refreshing the reconciled event cache for every sport.
 * 2. Settling finished games against the scoreboard feed.
 *
 * @dependencies
 * - backend/internal/config
 * - backend/internal/db
 * - backend/internal/kalshi
 * - backend/internal/espn
 * - backend/internal/services
 */

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/oddslens/backend/internal/config"
	"github.com/oddslens/backend/internal/db"
	"github.com/oddslens/backend/internal/espn"
	"github.com/oddslens/backend/internal/kalshi"
	"github.com/oddslens/backend/internal/logger"
	"github.com/oddslens/backend/internal/models"
	"github.com/oddslens/backend/internal/reconcile"
	"github.com/oddslens/backend/internal/services"
	"github.com/oddslens/backend/internal/sports"
)

const (
	refreshInterval = 5 * time.Minute
	settleInterval  = 30 * time.Minute
)

func main() {
	logger.Info("Starting OddsLens worker...")

	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config: %v", err)
	}

	// 2. Connect DBs
	pgDB, err := db.ConnectPostgres(cfg)
	if err != nil {
		logger.Fatal("Postgres connection failed: %v", err)
	}

	redisClient, err := db.ConnectRedis(cfg)
	if err != nil {
		logger.Fatal("Redis connection failed: %v", err)
	}

	// 3. Initialize Services
	eventsService := services.NewEventsService(pgDB, redisClient, kalshi.NewClient(cfg))
	resultsService := services.NewResultsService(pgDB, espn.NewClient(cfg))

	// 4. Context with Cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go refreshLoop(ctx, eventsService)
	go settleLoop(ctx, pgDB, resultsService)

	// 5. Wait for shutdown signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("Shutting down worker...")
	cancel()
	time.Sleep(time.Second)
}

// refreshLoop keeps the per-sport event cache warm so API reads rarely pay
// the upstream round trip.
func refreshLoop(ctx context.Context, events *services.EventsService) {
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	refresh := func() {
		for _, sport := range sports.All() {
			if _, err := events.GetEvents(ctx, sport); err != nil {
				logger.Error("event refresh failed for %s: %v", sport.Key, err)
			}
		}
	}

	refresh()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresh()
		}
	}
}

// settleLoop finds unsettled games past their close date and resolves them
// against the scoreboard.
func settleLoop(ctx context.Context, pgDB *gorm.DB, results *services.ResultsService) {
	ticker := time.NewTicker(settleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			settleOnce(ctx, pgDB, results)
		}
	}
}

func settleOnce(ctx context.Context, pgDB *gorm.DB, results *services.ResultsService) {
	var games []models.Game
	err := pgDB.WithContext(ctx).
		Where("is_completed = ? AND close_date IS NOT NULL AND close_date < ?", false, time.Now().UTC()).
		Limit(100).
		Find(&games).Error
	if err != nil {
		logger.Error("settle query failed: %v", err)
		return
	}

	for _, game := range games {
		cfg := sports.Get(game.Sport)
		if cfg == nil {
			continue
		}

		record := &reconcile.EventRecord{
			EventTicker: game.EventTicker,
			AwayTeam:    game.AwayTeam,
			HomeTeam:    game.HomeTeam,
			CloseDT:     game.CloseDate,
		}
		if _, err := results.GetEventResult(ctx, cfg, record); err != nil {
			logger.Error("settle failed for %s: %v", game.EventTicker, err)
		}
	}
}
