/**
 * @description
 * Service layer for game results.
 * Looks up the finished game on the scoreboard feed, judges how the
 * market's pre-game favorite fared, and settles the persisted game row
 * plus any community predictions made against it.
 *
 * @dependencies
 * - backend/internal/espn
 * - backend/internal/models
 * - backend/internal/sports
 * - gorm.io/gorm
 */

package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/oddslens/backend/internal/espn"
	"github.com/oddslens/backend/internal/logger"
	"github.com/oddslens/backend/internal/models"
	"github.com/oddslens/backend/internal/reconcile"
	"github.com/oddslens/backend/internal/sports"
)

// ResultVerdict pairs the scoreboard outcome with the market's pre-game view
type ResultVerdict struct {
	GameResult        *espn.GameResult `json:"game_result"`
	PrimaryTeam       string           `json:"primary_team,omitempty"`
	MarketProbability *float64         `json:"market_probability,omitempty"`
	ConfidenceLabel   string           `json:"confidence_label,omitempty"`
	MarketWasRight    *bool            `json:"market_was_right,omitempty"`
}

// ResultsService resolves final scores and settles games
type ResultsService struct {
	DB   *gorm.DB
	ESPN *espn.Client
}

func NewResultsService(db *gorm.DB, client *espn.Client) *ResultsService {
	return &ResultsService{
		DB:   db,
		ESPN: client,
	}
}

// GetEventResult finds the scoreboard entry for a reconciled event and
// judges the market's primary contract against the final outcome. A game
// that has not finished yields a verdict with no judgment attached.
func (s *ResultsService) GetEventResult(ctx context.Context, cfg *sports.Config, record *reconcile.EventRecord) (*ResultVerdict, error) {
	gameDate := time.Now().UTC()
	if record.CloseDT != nil {
		gameDate = *record.CloseDT
	}

	result, err := s.ESPN.FindGameByTeams(ctx, cfg.ESPNSport, cfg.ESPNLeague, record.AwayTeam, record.HomeTeam, gameDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query scoreboard: %w", err)
	}
	if result == nil {
		return nil, nil
	}

	verdict := &ResultVerdict{GameResult: result}

	// Judge the market only when a real winner contract was selected
	if wp := record.WinnerPrimary; wp.Ticker != "" && wp.SubjectTeam != "" {
		verdict.PrimaryTeam = wp.SubjectTeam
		verdict.MarketProbability = wp.YesBid
		if wp.YesBid != nil {
			verdict.ConfidenceLabel = confidenceLabel(*wp.YesBid)
		}

		if result.Status.Completed && result.Winner != "" {
			winnerName := result.AwayTeam.Name
			if result.Winner == "home" {
				winnerName = result.HomeTeam.Name
			}
			right := teamNamesAgree(wp.SubjectTeam, winnerName)
			verdict.MarketWasRight = &right
		}
	}

	if result.Status.Completed {
		if err := s.settleGame(ctx, record.EventTicker, result); err != nil {
			logger.Error("Failed to settle game %s: %v", record.EventTicker, err)
		}
	}

	return verdict, nil
}

// confidenceLabel buckets a pre-game probability into a plain-language
// strength for the market's favorite.
func confidenceLabel(p float64) string {
	switch {
	case p >= 0.75:
		return "very confident"
	case p >= 0.60:
		return "moderately confident"
	case p >= 0.40:
		return "uncertain"
	case p >= 0.25:
		return "doubtful"
	default:
		return "very doubtful"
	}
}

// teamNamesAgree tolerates the sources rendering the same team slightly
// differently ("Indianapolis Colts" vs "Colts").
func teamNamesAgree(a, b string) bool {
	return sports.NormalizeKey(a) == sports.NormalizeKey(b)
}

// settleGame writes the final score onto the games row and marks every
// prediction for that game correct or not.
func (s *ResultsService) settleGame(ctx context.Context, eventTicker string, result *espn.GameResult) error {
	if s.DB == nil {
		return nil
	}

	var game models.Game
	err := s.DB.WithContext(ctx).Where("event_ticker = ?", eventTicker).First(&game).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}
	if game.IsCompleted {
		return nil
	}

	game.IsCompleted = true
	game.Winner = result.Winner
	if result.HomeTeam != nil {
		game.HomeScore = result.HomeTeam.Score
	}
	if result.AwayTeam != nil {
		game.AwayScore = result.AwayTeam.Score
	}
	if err := s.DB.WithContext(ctx).Save(&game).Error; err != nil {
		return err
	}

	if result.Winner == "" {
		return nil
	}
	return s.DB.WithContext(ctx).Model(&models.Prediction{}).
		Where("game_id = ?", game.ID).
		Update("is_correct", gorm.Expr("predicted_winner = ?", result.Winner)).Error
}
