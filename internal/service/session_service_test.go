package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"german_coach/internal/config"
	"german_coach/internal/model"
	"german_coach/internal/repository/mocks"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "German Coach"
	cfg.App.DefaultLevel = "B2"
	cfg.App.HistoryLimit = 50
	cfg.JWT.SecretKey = "test-secret"
	return cfg
}

func Test_sessionService_StartSession(t *testing.T) {
	ctx := context.Background()
	learnerID := uuid.New()

	tests := []struct {
		name      string
		req       *model.CreateSessionRequest
		setupMock func(repo *mocks.SessionRepository)
		wantErr   error
		wantLevel model.Level
	}{
		{
			name: "explicit level",
			req:  &model.CreateSessionRequest{Level: "C1"},
			setupMock: func(repo *mocks.SessionRepository) {
				repo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.PracticeSession")).
					Return(nil).Once()
			},
			wantLevel: model.LevelC1,
		},
		{
			name: "default level when request omits it",
			req:  &model.CreateSessionRequest{},
			setupMock: func(repo *mocks.SessionRepository) {
				repo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.PracticeSession")).
					Return(nil).Once()
			},
			wantLevel: model.LevelB2,
		},
		{
			name: "lower-case level is normalized",
			req:  &model.CreateSessionRequest{Level: "a2"},
			setupMock: func(repo *mocks.SessionRepository) {
				repo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.PracticeSession")).
					Return(nil).Once()
			},
			wantLevel: model.LevelA2,
		},
		{
			name:      "unknown level rejected",
			req:       &model.CreateSessionRequest{Level: "D1"},
			setupMock: func(repo *mocks.SessionRepository) {},
			wantErr:   model.ErrInvalidLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			repo := new(mocks.SessionRepository)
			tt.setupMock(repo)
			svc := NewSessionService(db, repo, testConfig())

			session, err := svc.StartSession(ctx, learnerID, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, session)
			} else {
				require.NoError(t, err)
				assert.Equal(t, learnerID, session.LearnerID)
				assert.Equal(t, tt.wantLevel, session.CurrentLevel)
				assert.NotEqual(t, uuid.Nil, session.SessionID)
			}
			repo.AssertExpectations(t)
		})
	}
}

func Test_sessionService_UpdateLevel(t *testing.T) {
	ctx := context.Background()
	learnerID := uuid.New()
	sessionID := uuid.New()

	t.Run("valid level", func(t *testing.T) {
		db := setupTestDB(t)
		repo := new(mocks.SessionRepository)
		repo.On("UpdateLevel", ctx, mock.AnythingOfType("*gorm.DB"), learnerID, sessionID, model.LevelC1).
			Return(nil).Once()
		repo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), learnerID, sessionID).
			Return(&model.PracticeSession{SessionID: sessionID, LearnerID: learnerID, CurrentLevel: model.LevelC1}, nil).Once()

		session, err := NewSessionService(db, repo, testConfig()).UpdateLevel(ctx, learnerID, sessionID, "C1")
		require.NoError(t, err)
		assert.Equal(t, model.LevelC1, session.CurrentLevel)
		repo.AssertExpectations(t)
	})

	t.Run("invalid level", func(t *testing.T) {
		db := setupTestDB(t)
		repo := new(mocks.SessionRepository)

		_, err := NewSessionService(db, repo, testConfig()).UpdateLevel(ctx, learnerID, sessionID, "Z9")
		assert.ErrorIs(t, err, model.ErrInvalidLevel)
		repo.AssertNotCalled(t, "UpdateLevel")
	})

	t.Run("session not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := new(mocks.SessionRepository)
		repo.On("UpdateLevel", ctx, mock.AnythingOfType("*gorm.DB"), learnerID, sessionID, model.LevelA1).
			Return(model.ErrNotFound).Once()

		_, err := NewSessionService(db, repo, testConfig()).UpdateLevel(ctx, learnerID, sessionID, "A1")
		assert.ErrorIs(t, err, model.ErrNotFound)
		repo.AssertExpectations(t)
	})
}

func Test_sessionService_EndSession(t *testing.T) {
	ctx := context.Background()
	learnerID := uuid.New()
	sessionID := uuid.New()

	t.Run("success", func(t *testing.T) {
		db := setupTestDB(t)
		repo := new(mocks.SessionRepository)
		repo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), learnerID, sessionID).
			Return(nil).Once()

		err := NewSessionService(db, repo, testConfig()).EndSession(ctx, learnerID, sessionID)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := new(mocks.SessionRepository)
		repo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), learnerID, sessionID).
			Return(model.ErrNotFound).Once()

		err := NewSessionService(db, repo, testConfig()).EndSession(ctx, learnerID, sessionID)
		assert.ErrorIs(t, err, model.ErrNotFound)
		repo.AssertExpectations(t)
	})
}
