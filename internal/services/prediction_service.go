/**
 * @description
 * Service layer for community predictions.
 * Manages anonymous sessions, accepts one pick per session per game
 * (later picks overwrite), and aggregates the crowd's lean per event.
 *
 * @dependencies
 * - backend/internal/models
 * - gorm.io/gorm
 * - github.com/google/uuid
 */

package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oddslens/backend/internal/models"
)

// PredictionInput is one pick as submitted by a client
type PredictionInput struct {
	SessionID           string   `json:"session_id"`
	EventTicker         string   `json:"event_ticker"`
	Sport               string   `json:"sport"`
	PredictedWinner     string   `json:"predicted_winner"`
	Confidence          int      `json:"confidence"`
	KalshiProbability   *float64 `json:"kalshi_probability"`
	SportsbookConsensus *float64 `json:"sportsbook_consensus"`
}

// CommunityConsensus is the crowd's aggregate lean on one game
type CommunityConsensus struct {
	EventTicker      string  `json:"event_ticker"`
	TotalPredictions int     `json:"total_predictions"`
	HomePercentage   float64 `json:"home_percentage"`
	AwayPercentage   float64 `json:"away_percentage"`
	AvgConfidence    float64 `json:"avg_confidence"`
}

// PredictionService stores and aggregates community picks
type PredictionService struct {
	DB *gorm.DB
}

func NewPredictionService(db *gorm.DB) *PredictionService {
	return &PredictionService{DB: db}
}

// GetOrCreateSession resolves a session UUID to its row, creating a new
// session when the id is empty or unknown. Returns the session either way.
func (s *PredictionService) GetOrCreateSession(ctx context.Context, sessionID string) (*models.UserSession, error) {
	if sessionID != "" {
		parsed, err := uuid.Parse(sessionID)
		if err != nil {
			return nil, fmt.Errorf("invalid session id: %w", err)
		}
		var session models.UserSession
		err = s.DB.WithContext(ctx).Where("session_id = ?", parsed).First(&session).Error
		if err == nil {
			session.LastActive = time.Now().UTC()
			if err := s.DB.WithContext(ctx).Save(&session).Error; err != nil {
				return nil, err
			}
			return &session, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	session := models.UserSession{}
	if err := s.DB.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// SubmitPrediction records or replaces a session's pick for a game
func (s *PredictionService) SubmitPrediction(ctx context.Context, input PredictionInput) (*models.Prediction, error) {
	if input.PredictedWinner != "home" && input.PredictedWinner != "away" {
		return nil, fmt.Errorf("predicted_winner must be \"home\" or \"away\"")
	}
	if input.Confidence < 0 || input.Confidence > 100 {
		return nil, fmt.Errorf("confidence must be between 0 and 100")
	}

	session, err := s.GetOrCreateSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	var game models.Game
	err = s.DB.WithContext(ctx).Where("event_ticker = ?", input.EventTicker).First(&game).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("unknown event %q", input.EventTicker)
		}
		return nil, err
	}
	if game.IsCompleted {
		return nil, fmt.Errorf("game %q is already settled", input.EventTicker)
	}

	prediction := models.Prediction{
		SessionID:           session.SessionID,
		GameID:              game.ID,
		PredictedWinner:     input.PredictedWinner,
		Confidence:          input.Confidence,
		KalshiProbability:   input.KalshiProbability,
		SportsbookConsensus: input.SportsbookConsensus,
	}

	err = s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "game_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"predicted_winner",
			"confidence",
			"kalshi_probability",
			"sportsbook_consensus",
		}),
	}).Create(&prediction).Error
	if err != nil {
		return nil, fmt.Errorf("failed to store prediction: %w", err)
	}

	if err := s.DB.WithContext(ctx).Model(&models.UserSession{}).
		Where("id = ?", session.ID).
		Update("total_predictions", gorm.Expr(
			"(SELECT COUNT(*) FROM predictions WHERE session_id = ?)", session.SessionID,
		)).Error; err != nil {
		return nil, err
	}

	return &prediction, nil
}

// GetPredictions returns every stored pick for one event
func (s *PredictionService) GetPredictions(ctx context.Context, eventTicker string) ([]models.Prediction, error) {
	var game models.Game
	err := s.DB.WithContext(ctx).Where("event_ticker = ?", eventTicker).First(&game).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return []models.Prediction{}, nil
		}
		return nil, err
	}

	var predictions []models.Prediction
	if err := s.DB.WithContext(ctx).Where("game_id = ?", game.ID).Order("created_at DESC").Find(&predictions).Error; err != nil {
		return nil, err
	}
	return predictions, nil
}

// GetConsensus aggregates the crowd's picks for one event into split
// percentages and an average confidence.
func (s *PredictionService) GetConsensus(ctx context.Context, eventTicker string) (*CommunityConsensus, error) {
	predictions, err := s.GetPredictions(ctx, eventTicker)
	if err != nil {
		return nil, err
	}

	consensus := &CommunityConsensus{
		EventTicker:      eventTicker,
		TotalPredictions: len(predictions),
	}
	if len(predictions) == 0 {
		return consensus, nil
	}

	home := 0
	confidenceSum := 0
	for _, p := range predictions {
		if p.PredictedWinner == "home" {
			home++
		}
		confidenceSum += p.Confidence
	}

	total := float64(len(predictions))
	consensus.HomePercentage = roundPct(float64(home) / total * 100)
	consensus.AwayPercentage = roundPct(float64(len(predictions)-home) / total * 100)
	consensus.AvgConfidence = roundPct(float64(confidenceSum) / total)

	return consensus, nil
}

func roundPct(v float64) float64 {
	return math.Round(v*10) / 10
}
