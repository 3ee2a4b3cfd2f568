/**
 * @description
 * Service layer for sportsbook odds.
 * Fetches the per-sport moneyline feed, caches it with the same
 * fresh/stale two-tier scheme the events service uses, and pairs a
 * reconciled event with its sportsbook counterpart to compute per-book
 * quotes and a cross-book consensus.
 *
 * @dependencies
 * - backend/internal/oddsfeed
 * - backend/internal/compare
 * - backend/internal/sports
 * - github.com/redis/go-redis/v9
 */

package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/oddslens/backend/internal/compare"
	"github.com/oddslens/backend/internal/logger"
	"github.com/oddslens/backend/internal/oddsfeed"
	"github.com/oddslens/backend/internal/reconcile"
	"github.com/oddslens/backend/internal/sports"
)

// EventComparison is the odds view for one event across sources
type EventComparison struct {
	EventTicker string             `json:"event_ticker"`
	AwayTeam    string             `json:"away_team"`
	HomeTeam    string             `json:"home_team"`
	Matched     bool               `json:"matched"`
	Quotes      compare.GameOdds   `json:"quotes"`
	Consensus   *compare.Consensus `json:"consensus,omitempty"`
	BestAway    *compare.Quote     `json:"best_away,omitempty"`
	BestHome    *compare.Quote     `json:"best_home,omitempty"`
}

// OddsService serves sportsbook prices and cross-source comparisons
type OddsService struct {
	Redis *redis.Client
	Feed  *oddsfeed.Client
}

func NewOddsService(rdb *redis.Client, feed *oddsfeed.Client) *OddsService {
	return &OddsService{
		Redis: rdb,
		Feed:  feed,
	}
}

func oddsCacheKey(sport string) string {
	return fmt.Sprintf("odds:%s", sport)
}

func oddsStaleKey(sport string) string {
	return fmt.Sprintf("odds:%s:stale", sport)
}

// GetGames returns the sportsbook games for one sport, preferring
// Cache -> Upstream -> Stale cache.
func (s *OddsService) GetGames(ctx context.Context, cfg *sports.Config) ([]oddsfeed.Game, error) {
	val, err := s.Redis.Get(ctx, oddsCacheKey(cfg.Key)).Result()
	if err == nil {
		var games []oddsfeed.Game
		if err := json.Unmarshal([]byte(val), &games); err == nil {
			return games, nil
		}
	}

	games, err := s.Feed.FetchGames(ctx, cfg.OddsAPIKey)
	if err != nil {
		logger.Error("Failed to fetch sportsbook odds for %s: %v", cfg.Key, err)
		return s.serveStaleOdds(ctx, cfg.Key)
	}

	s.cacheGames(ctx, cfg.Key, games)
	return games, nil
}

func (s *OddsService) serveStaleOdds(ctx context.Context, sport string) ([]oddsfeed.Game, error) {
	val, err := s.Redis.Get(ctx, oddsStaleKey(sport)).Result()
	if err == nil {
		var games []oddsfeed.Game
		if err := json.Unmarshal([]byte(val), &games); err == nil {
			logger.Info("Serving stale sportsbook odds for %s", sport)
			return games, nil
		}
	}

	empty := []oddsfeed.Game{}
	if data, err := json.Marshal(empty); err == nil {
		if err := s.Redis.Set(ctx, oddsCacheKey(sport), data, CacheTTL).Err(); err != nil {
			logger.Error("Failed to cache empty odds for %s: %v", sport, err)
		}
	}
	return empty, nil
}

func (s *OddsService) cacheGames(ctx context.Context, sport string, games []oddsfeed.Game) {
	data, err := json.Marshal(games)
	if err != nil {
		logger.Error("Failed to marshal sportsbook games for cache: %v", err)
		return
	}
	if err := s.Redis.Set(ctx, oddsCacheKey(sport), data, CacheTTL).Err(); err != nil {
		logger.Error("Failed to set odds cache: %v", err)
	}
	if err := s.Redis.Set(ctx, oddsStaleKey(sport), data, 0).Err(); err != nil {
		logger.Error("Failed to set stale odds cache: %v", err)
	}
}

// CompareEvent matches one reconciled event against the sportsbook feed
// and folds the per-book prices into a consensus. An unmatched event
// yields Matched=false with empty quotes rather than an error.
func (s *OddsService) CompareEvent(ctx context.Context, cfg *sports.Config, record *reconcile.EventRecord) (*EventComparison, error) {
	games, err := s.GetGames(ctx, cfg)
	if err != nil {
		return nil, err
	}

	result := &EventComparison{
		EventTicker: record.EventTicker,
		AwayTeam:    record.AwayTeam,
		HomeTeam:    record.HomeTeam,
	}

	matcher := compare.NewMatcher(cfg.Directory())
	game := matcher.FindGame(record.AwayTeam, record.HomeTeam, games)
	if game == nil {
		return result, nil
	}

	result.Matched = true
	result.Quotes = matcher.CollectQuotes(game)

	consensus := compare.ComputeConsensus(result.Quotes)
	result.Consensus = &consensus
	result.BestAway = compare.BestQuote(result.Quotes.Away)
	result.BestHome = compare.BestQuote(result.Quotes.Home)

	return result, nil
}
