/**
 * @description
 * Service layer for reconciled event data.
 * Orchestrates fetching open markets from the exchange, reconciling them
 * into per-game event records, caching in Redis, and persisting game rows
 * to Postgres.
 *
 * @dependencies
 * - backend/internal/kalshi
 * - backend/internal/reconcile
 * - backend/internal/sports
 * - backend/internal/models
 * - gorm.io/gorm
 * - github.com/redis/go-redis/v9
 *
 * @notes
 * - Caching is two-tier: a fresh key with a short TTL, plus a non-expiring
 *   stale twin served when the upstream is down. A fresh-keyed empty
 *   payload is written after a failed fetch with no stale copy, so a dead
 *   upstream is not hammered on every request.
 */

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgconn"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oddslens/backend/internal/kalshi"
	"github.com/oddslens/backend/internal/logger"
	"github.com/oddslens/backend/internal/models"
	"github.com/oddslens/backend/internal/reconcile"
	"github.com/oddslens/backend/internal/sports"
)

const (
	CacheTTL = 5 * time.Minute

	gameSyncLockKey = 17
)

// EventsService fetches, reconciles, caches and persists game events
type EventsService struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Kalshi *kalshi.Client
}

func NewEventsService(db *gorm.DB, rdb *redis.Client, client *kalshi.Client) *EventsService {
	return &EventsService{
		DB:     db,
		Redis:  rdb,
		Kalshi: client,
	}
}

func eventsCacheKey(sport string) string {
	return fmt.Sprintf("events:%s", sport)
}

func eventsStaleKey(sport string) string {
	return fmt.Sprintf("events:%s:stale", sport)
}

// GetEvents returns the reconciled events for one sport, preferring
// Cache -> Upstream -> Stale cache.
func (s *EventsService) GetEvents(ctx context.Context, cfg *sports.Config) ([]reconcile.EventRecord, error) {
	// 1. Try the fresh cache
	val, err := s.Redis.Get(ctx, eventsCacheKey(cfg.Key)).Result()
	if err == nil {
		var events []reconcile.EventRecord
		if err := json.Unmarshal([]byte(val), &events); err == nil {
			return events, nil
		}
		// If unmarshal fails, fall through to the upstream
	}

	// 2. Fetch and reconcile
	markets, err := s.Kalshi.GetAllOpenMarkets(ctx, cfg.KalshiSeries)
	if err != nil {
		logger.Error("Failed to fetch markets for %s: %v", cfg.Key, err)
		return s.serveStale(ctx, cfg.Key)
	}

	engine := reconcile.NewEngine(cfg.Directory())
	events := engine.Reconcile(markets)

	s.cacheEvents(ctx, cfg.Key, events)

	if err := s.upsertGames(ctx, cfg.Key, events); err != nil {
		// Persistence is advisory for reads; log and serve the data anyway
		logger.Error("Failed to persist games for %s: %v", cfg.Key, err)
	}

	return events, nil
}

// serveStale falls back to the non-expiring stale copy after an upstream
// failure. With no stale copy either, an empty payload is cached under the
// fresh key to throttle retries, and an empty slice is returned.
func (s *EventsService) serveStale(ctx context.Context, sport string) ([]reconcile.EventRecord, error) {
	val, err := s.Redis.Get(ctx, eventsStaleKey(sport)).Result()
	if err == nil {
		var events []reconcile.EventRecord
		if err := json.Unmarshal([]byte(val), &events); err == nil {
			logger.Info("Serving stale events for %s", sport)
			return events, nil
		}
	}

	empty := []reconcile.EventRecord{}
	if data, err := json.Marshal(empty); err == nil {
		if err := s.Redis.Set(ctx, eventsCacheKey(sport), data, CacheTTL).Err(); err != nil {
			logger.Error("Failed to cache empty events for %s: %v", sport, err)
		}
	}
	return empty, nil
}

func (s *EventsService) cacheEvents(ctx context.Context, sport string, events []reconcile.EventRecord) {
	data, err := json.Marshal(events)
	if err != nil {
		logger.Error("Failed to marshal events for cache: %v", err)
		return
	}
	if err := s.Redis.Set(ctx, eventsCacheKey(sport), data, CacheTTL).Err(); err != nil {
		logger.Error("Failed to set events cache: %v", err)
	}
	if err := s.Redis.Set(ctx, eventsStaleKey(sport), data, 0).Err(); err != nil {
		logger.Error("Failed to set stale events cache: %v", err)
	}
}

// upsertGames mirrors reconciled events into the games table, keyed by
// event ticker. Settlement columns are left alone on conflict.
func (s *EventsService) upsertGames(ctx context.Context, sport string, events []reconcile.EventRecord) error {
	if len(events) == 0 || s.DB == nil {
		return nil
	}

	games := make([]models.Game, 0, len(events))
	for _, ev := range events {
		if ev.EventTicker == reconcile.UnknownEvent {
			continue
		}
		games = append(games, models.Game{
			EventTicker: ev.EventTicker,
			Sport:       sport,
			HomeTeam:    ev.HomeTeam,
			AwayTeam:    ev.AwayTeam,
			GameDate:    ev.CloseDT,
			CloseDate:   ev.CloseDT,
		})
	}
	if len(games) == 0 {
		return nil
	}

	unlock, lockErr := s.acquireGameSyncLock(ctx)
	if lockErr != nil {
		return fmt.Errorf("failed to acquire game sync lock: %w", lockErr)
	}
	defer unlock()

	const maxRetries = 5
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = s.DB.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "event_ticker"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"sport",
				"home_team",
				"away_team",
				"game_date",
				"close_date",
			}),
		}).CreateInBatches(games, 100).Error
		if err == nil {
			break
		}

		if pgErr, ok := err.(*pgconn.PgError); ok && (pgErr.Code == "40P01" || pgErr.Code == "40001") {
			backoff := time.Duration(attempt*100+rand.Intn(100)) * time.Millisecond
			time.Sleep(backoff)
			continue
		}
		break
	}
	if err != nil {
		return fmt.Errorf("failed to upsert games: %w", err)
	}
	return nil
}

// acquireGameSyncLock serializes concurrent game upserts across replicas
// with a Postgres advisory lock.
func (s *EventsService) acquireGameSyncLock(ctx context.Context) (func(), error) {
	const maxAttempts = 30

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		var locked bool
		err := s.DB.WithContext(ctx).Raw("SELECT pg_try_advisory_lock(?)", gameSyncLockKey).Scan(&locked).Error
		if err != nil {
			return nil, err
		}
		if locked {
			return func() {
				if err := s.DB.WithContext(ctx).Exec("SELECT pg_advisory_unlock(?)", gameSyncLockKey).Error; err != nil {
					logger.Error("failed to release game sync lock: %v", err)
				}
			}, nil
		}
		time.Sleep(200 * time.Millisecond)
	}

	return nil, fmt.Errorf("timed out waiting for game sync lock")
}

// FindEvent returns the reconciled record for a single event ticker, or
// nil when it is not present in the current snapshot.
func (s *EventsService) FindEvent(ctx context.Context, cfg *sports.Config, eventTicker string) (*reconcile.EventRecord, error) {
	events, err := s.GetEvents(ctx, cfg)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].EventTicker == eventTicker {
			return &events[i], nil
		}
	}
	return nil, nil
}
