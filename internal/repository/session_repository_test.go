package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"german_coach/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func createTestSession(t *testing.T, db *gorm.DB, learnerID uuid.UUID, level model.Level) *model.PracticeSession {
	t.Helper()
	session := &model.PracticeSession{
		SessionID:    uuid.New(),
		LearnerID:    learnerID,
		CurrentLevel: level,
	}
	require.NoError(t, NewGormSessionRepository().Create(context.Background(), db, session))
	return session
}

func Test_gormSessionRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormSessionRepository()

	learnerID := uuid.New()
	otherLearnerID := uuid.New()
	session := createTestSession(t, db, learnerID, model.LevelB2)

	t.Run("owner finds own session", func(t *testing.T) {
		found, err := repo.FindByID(ctx, db, learnerID, session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, session.SessionID, found.SessionID)
		assert.Equal(t, model.LevelB2, found.CurrentLevel)
	})

	t.Run("other learner cannot see the session", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, otherLearnerID, session.SessionID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("unknown session id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, learnerID, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_gormSessionRepository_FindByLearner(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormSessionRepository()

	learnerID := uuid.New()
	createTestSession(t, db, learnerID, model.LevelA1)
	createTestSession(t, db, learnerID, model.LevelC1)
	createTestSession(t, db, uuid.New(), model.LevelB1)

	sessions, err := repo.FindByLearner(ctx, db, learnerID)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
	for _, s := range sessions {
		assert.Equal(t, learnerID, s.LearnerID)
	}
}

func Test_gormSessionRepository_UpdateLevel(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormSessionRepository()

	learnerID := uuid.New()
	session := createTestSession(t, db, learnerID, model.LevelA2)

	t.Run("level change is persisted", func(t *testing.T) {
		err := repo.UpdateLevel(ctx, db, learnerID, session.SessionID, model.LevelC1)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, db, learnerID, session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, model.LevelC1, found.CurrentLevel)
	})

	t.Run("other learner cannot change the level", func(t *testing.T) {
		err := repo.UpdateLevel(ctx, db, uuid.New(), session.SessionID, model.LevelA1)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_gormSessionRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormSessionRepository()

	learnerID := uuid.New()
	session := createTestSession(t, db, learnerID, model.LevelB2)

	t.Run("other learner cannot delete the session", func(t *testing.T) {
		err := repo.Delete(ctx, db, uuid.New(), session.SessionID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("owner deletes own session", func(t *testing.T) {
		err := repo.Delete(ctx, db, learnerID, session.SessionID)
		require.NoError(t, err)

		_, err = repo.FindByID(ctx, db, learnerID, session.SessionID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
