//go:generate mockery --name SessionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"german_coach/internal/middleware"
	"german_coach/internal/model"
)

// SessionRepository persists practice sessions. All lookups are scoped by
// learner ID so a learner can never touch another learner's session.
type SessionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *model.PracticeSession) error
	FindByID(ctx context.Context, db *gorm.DB, learnerID, sessionID uuid.UUID) (*model.PracticeSession, error)
	FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]*model.PracticeSession, error)
	UpdateLevel(ctx context.Context, tx *gorm.DB, learnerID, sessionID uuid.UUID, level model.Level) error
	Delete(ctx context.Context, tx *gorm.DB, learnerID, sessionID uuid.UUID) error
}

type gormSessionRepository struct{}

func NewGormSessionRepository() SessionRepository {
	return &gormSessionRepository{}
}

func (r *gormSessionRepository) Create(ctx context.Context, tx *gorm.DB, session *model.PracticeSession) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(session)
	if result.Error != nil {
		logger.Error("Error creating practice session in DB",
			"error", result.Error,
			"learner_id", session.LearnerID.String(),
		)
		return fmt.Errorf("gormSessionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormSessionRepository) FindByID(ctx context.Context, db *gorm.DB, learnerID, sessionID uuid.UUID) (*model.PracticeSession, error) {
	logger := middleware.GetLogger(ctx)
	var session model.PracticeSession
	result := db.WithContext(ctx).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("learner_id = ? AND session_id = ?", learnerID, sessionID).
		First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding practice session by ID in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"session_id", sessionID.String(),
		)
		return nil, fmt.Errorf("gormSessionRepository.FindByID: %w", result.Error)
	}
	return &session, nil
}

func (r *gormSessionRepository) FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]*model.PracticeSession, error) {
	logger := middleware.GetLogger(ctx)
	var sessions []*model.PracticeSession
	result := db.WithContext(ctx).
		Where("learner_id = ?", learnerID).
		Order("created_at DESC").
		Find(&sessions)
	if result.Error != nil {
		logger.Error("Error finding practice sessions by learner in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
		)
		return nil, fmt.Errorf("gormSessionRepository.FindByLearner: %w", result.Error)
	}
	return sessions, nil
}

func (r *gormSessionRepository) UpdateLevel(ctx context.Context, tx *gorm.DB, learnerID, sessionID uuid.UUID, level model.Level) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.PracticeSession{}).
		Where("learner_id = ? AND session_id = ?", learnerID, sessionID).
		Update("current_level", level)
	if result.Error != nil {
		logger.Error("Error updating session level in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"session_id", sessionID.String(),
		)
		return fmt.Errorf("gormSessionRepository.UpdateLevel: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormSessionRepository) Delete(ctx context.Context, tx *gorm.DB, learnerID, sessionID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Where("learner_id = ? AND session_id = ?", learnerID, sessionID).
		Delete(&model.PracticeSession{})
	if result.Error != nil {
		logger.Error("Error deleting practice session in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"session_id", sessionID.String(),
		)
		return fmt.Errorf("gormSessionRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
