/**
 * @description
 * UserSession database model.
 * Maps to the 'user_sessions' table in PostgreSQL. Sessions are anonymous:
 * a client holds an opaque UUID and accrues predictions against it, no
 * account required.
 *
 * @dependencies
 * - gorm.io/gorm
 * - github.com/google/uuid
 */

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserSession represents an anonymous prediction session
type UserSession struct {
	ID               uint      `gorm:"primary_key" json:"id"`
	SessionID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"session_id"`
	LastActive       time.Time `gorm:"column:last_active" json:"last_active"`
	TotalPredictions int       `gorm:"default:0" json:"total_predictions"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name used by UserSession to `user_sessions`
func (UserSession) TableName() string {
	return "user_sessions"
}

// BeforeCreate assigns a fresh session UUID if the caller did not
func (s *UserSession) BeforeCreate(tx *gorm.DB) (err error) {
	if s.SessionID == uuid.Nil {
		s.SessionID = uuid.New()
	}
	if s.LastActive.IsZero() {
		s.LastActive = time.Now().UTC()
	}
	return
}
