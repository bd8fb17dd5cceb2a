// internal/model/session.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PracticeSession is one continuous practice run for a learner. Exercise
// history is append-only and ordered by Position.
type PracticeSession struct {
	SessionID    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"session_id"`
	LearnerID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	CurrentLevel Level          `gorm:"type:varchar(2);not null" json:"current_level"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Exercises []ExerciseResult `gorm:"foreignKey:SessionID;references:SessionID" json:"exercises,omitempty"`
}

func (PracticeSession) TableName() string {
	return "practice_sessions"
}

// CreateSessionRequest starts a session. Level is optional; the
// configured default is used when absent.
type CreateSessionRequest struct {
	Level string `json:"level,omitempty" validate:"omitempty"`
}

// UpdateLevelRequest changes the session's current level.
type UpdateLevelRequest struct {
	Level string `json:"level" validate:"required"`
}
