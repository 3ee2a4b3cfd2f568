/**
 * @description
 * Prediction database model.
 * Maps to the 'predictions' table in PostgreSQL. One row per session per
 * game; re-submitting overwrites the earlier pick. The market and
 * sportsbook probabilities observed at prediction time are snapshotted so
 * calibration can be judged after settlement.
 *
 * @dependencies
 * - gorm.io/gorm
 * - github.com/google/uuid
 */

package models

import (
	"time"

	"github.com/google/uuid"
)

// Prediction represents one session's pick for one game
type Prediction struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;index:idx_predictions_session;uniqueIndex:idx_predictions_session_game" json:"session_id"`
	GameID    uint      `gorm:"not null;index:idx_predictions_game;uniqueIndex:idx_predictions_session_game" json:"game_id"`

	PredictedWinner string `gorm:"not null" json:"predicted_winner"` // "home" or "away"
	Confidence      int    `gorm:"default:50" json:"confidence"`     // 0-100 self-reported

	// Market-derived snapshots taken when the prediction was made
	KalshiProbability   *float64 `gorm:"column:kalshi_probability" json:"kalshi_probability"`
	SportsbookConsensus *float64 `gorm:"column:sportsbook_consensus" json:"sportsbook_consensus"`

	// Set at settlement; pointer so unsettled stays NULL
	IsCorrect *bool `gorm:"column:is_correct" json:"is_correct"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName overrides the table name used by Prediction to `predictions`
func (Prediction) TableName() string {
	return "predictions"
}
