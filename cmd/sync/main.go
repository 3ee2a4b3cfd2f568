package main

import (
	"context"
	"log"

	"github.com/oddslens/backend/internal/config"
	"github.com/oddslens/backend/internal/db"
	"github.com/oddslens/backend/internal/kalshi"
	"github.com/oddslens/backend/internal/models"
	"github.com/oddslens/backend/internal/services"
	"github.com/oddslens/backend/internal/sports"
)

// One-shot sync: pull open contracts for every sport, reconcile them, and
// refresh the cache plus the games table. Suitable for cron.
func main() {
	log.Println("Starting manual event sync...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pgDB, err := db.ConnectPostgres(cfg)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	redisClient, err := db.ConnectRedis(cfg)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	service := services.NewEventsService(pgDB, redisClient, kalshi.NewClient(cfg))

	ctx := context.Background()
	for _, sport := range sports.All() {
		events, err := service.GetEvents(ctx, sport)
		if err != nil {
			log.Printf("sync failed for %s: %v", sport.Key, err)
			continue
		}
		log.Printf("%s: %d events reconciled", sport.Key, len(events))
	}

	var gameCount int64
	if err := pgDB.Model(&models.Game{}).Count(&gameCount).Error; err == nil {
		log.Printf("Games stored in Postgres: %d", gameCount)
	} else {
		log.Printf("Failed to count games: %v", err)
	}

	log.Println("Manual event sync completed.")
}
