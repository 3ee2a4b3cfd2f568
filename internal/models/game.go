/**
 * @description
 * Game database model.
 * Maps to the 'games' table in PostgreSQL. One row per reconciled event,
 * keyed by the exchange event ticker, refreshed on each market sync and
 * settled once a final score is known.
 *
 * @dependencies
 * - gorm.io/gorm
 */

package models

import (
	"time"
)

// Game represents one real-world matchup tracked across sources
type Game struct {
	ID          uint       `gorm:"primary_key" json:"id"`
	EventTicker string     `gorm:"uniqueIndex;not null" json:"event_ticker"`
	Sport       string     `gorm:"index;not null" json:"sport"`
	HomeTeam    string     `json:"home_team"`
	AwayTeam    string     `json:"away_team"`
	GameDate    *time.Time `gorm:"column:game_date" json:"game_date"`
	CloseDate   *time.Time `gorm:"column:close_date" json:"close_date"`

	// Settlement fields, populated once the scoreboard reports a final
	IsCompleted bool   `gorm:"default:false" json:"is_completed"`
	Winner      string `json:"winner"` // "home", "away" or empty while unsettled
	HomeScore   *int   `gorm:"column:home_score" json:"home_score"`
	AwayScore   *int   `gorm:"column:away_score" json:"away_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName overrides the table name used by Game to `games`
func (Game) TableName() string {
	return "games"
}
