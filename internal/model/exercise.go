// internal/model/exercise.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExerciseType selects between a vocabulary drill and a Goethe-style
// exam task.
type ExerciseType string

const (
	ExerciseVocabulary ExerciseType = "vocabulary"
	ExerciseExamTask   ExerciseType = "exam_task"
)

// ParseExerciseType validates an exercise type string.
func ParseExerciseType(s string) (ExerciseType, error) {
	switch ExerciseType(strings.ToLower(strings.TrimSpace(s))) {
	case ExerciseVocabulary:
		return ExerciseVocabulary, nil
	case ExerciseExamTask:
		return ExerciseExamTask, nil
	default:
		return "", ErrInvalidInput
	}
}

// ExerciseResult is one generated exercise in a session's history.
// PromptText is always non-empty; UserAnswer and FeedbackText are filled
// in by the answer round-trip.
type ExerciseResult struct {
	ExerciseID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"exercise_id"`
	SessionID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	LearnerID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Position   int            `gorm:"not null" json:"position"` // zero-based position in session history
	Level      Level          `gorm:"type:varchar(2);not null" json:"level"`
	Type       ExerciseType   `gorm:"type:varchar(20);not null" json:"exercise_type"`
	PromptText string         `gorm:"not null" json:"prompt_text"`
	UserAnswer *string        `json:"user_answer,omitempty"`
	Feedback   string         `json:"feedback_text"`
	Hint       string         `json:"hint_text"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ExerciseResult) TableName() string {
	return "exercise_results"
}

// Answered reports whether the learner has submitted an answer yet.
func (e *ExerciseResult) Answered() bool {
	return e.UserAnswer != nil
}

// CreateExerciseRequest asks for a new exercise in a session. Level is
// optional; the session's current level is used when absent.
type CreateExerciseRequest struct {
	ExerciseType string `json:"exercise_type" validate:"required,oneof=vocabulary exam_task"`
	Level        string `json:"level,omitempty" validate:"omitempty"`
}

// SubmitAnswerRequest carries the learner's answer to an exercise.
type SubmitAnswerRequest struct {
	Answer string `json:"answer" validate:"required,min=1,max=4000"`
}
