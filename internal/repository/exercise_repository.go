//go:generate mockery --name ExerciseRepository --output ./mocks --outpkg mocks --case=underscore
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

// ExerciseRepository persists exercise results. History is append-only:
// new exercises get the next Position, existing rows only ever change
// their answer and feedback fields.
type ExerciseRepository interface {
	Create(ctx context.Context, tx *gorm.DB, exercise *model.ExerciseResult) error
	FindBySession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID, limit int) ([]*model.ExerciseResult, error)
	FindByPosition(ctx context.Context, db *gorm.DB, sessionID uuid.UUID, position int) (*model.ExerciseResult, error)
	CountBySession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (int64, error)
	UpdateAnswer(ctx context.Context, tx *gorm.DB, exerciseID uuid.UUID, updates map[string]interface{}) error
}

type gormExerciseRepository struct{}

func NewGormExerciseRepository() ExerciseRepository {
	return &gormExerciseRepository{}
}

func (r *gormExerciseRepository) Create(ctx context.Context, tx *gorm.DB, exercise *model.ExerciseResult) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(exercise)
	if result.Error != nil {
		logger.Error("Error creating exercise result in DB",
			"error", result.Error,
			"session_id", exercise.SessionID.String(),
			"position", exercise.Position,
		)
		return fmt.Errorf("gormExerciseRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormExerciseRepository) FindBySession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID, limit int) ([]*model.ExerciseResult, error) {
	logger := middleware.GetLogger(ctx)
	var exercises []*model.ExerciseResult
	query := db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("position ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&exercises)
	if result.Error != nil {
		logger.Error("Error finding exercises by session in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return nil, fmt.Errorf("gormExerciseRepository.FindBySession: %w", result.Error)
	}
	return exercises, nil
}

func (r *gormExerciseRepository) FindByPosition(ctx context.Context, db *gorm.DB, sessionID uuid.UUID, position int) (*model.ExerciseResult, error) {
	logger := middleware.GetLogger(ctx)
	var exercise model.ExerciseResult
	result := db.WithContext(ctx).
		Where("session_id = ? AND position = ?", sessionID, position).
		First(&exercise)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrIndexOutOfRange
		}
		logger.Error("Error finding exercise by position in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
			"position", position,
		)
		return nil, fmt.Errorf("gormExerciseRepository.FindByPosition: %w", result.Error)
	}
	return &exercise, nil
}

func (r *gormExerciseRepository) CountBySession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.ExerciseResult{}).
		Where("session_id = ?", sessionID).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting exercises by session in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return 0, fmt.Errorf("gormExerciseRepository.CountBySession: %w", result.Error)
	}
	return count, nil
}

func (r *gormExerciseRepository) UpdateAnswer(ctx context.Context, tx *gorm.DB, exerciseID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.ExerciseResult{}).
		Where("exercise_id = ?", exerciseID).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating exercise answer in DB",
			"error", result.Error,
			"exercise_id", exerciseID.String(),
		)
		return fmt.Errorf("gormExerciseRepository.UpdateAnswer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
