//go:generate mockery --name SessionService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"german_coach/internal/config"
	"german_coach/internal/middleware"
	"german_coach/internal/model"
	"german_coach/internal/repository"
)

// SessionService manages practice sessions. Every operation is scoped to
// the calling learner; sessions are never shared.
type SessionService interface {
	StartSession(ctx context.Context, learnerID uuid.UUID, req *model.CreateSessionRequest) (*model.PracticeSession, error)
	GetSession(ctx context.Context, learnerID, sessionID uuid.UUID) (*model.PracticeSession, error)
	ListSessions(ctx context.Context, learnerID uuid.UUID) ([]*model.PracticeSession, error)
	UpdateLevel(ctx context.Context, learnerID, sessionID uuid.UUID, levelStr string) (*model.PracticeSession, error)
	EndSession(ctx context.Context, learnerID, sessionID uuid.UUID) error
}

type sessionService struct {
	db          *gorm.DB
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

func NewSessionService(db *gorm.DB, sessionRepo repository.SessionRepository, cfg *config.Config) SessionService {
	return &sessionService{
		db:          db,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

// StartSession creates a session at the requested level, or the configured
// default when the request does not name one.
func (s *sessionService) StartSession(ctx context.Context, learnerID uuid.UUID, req *model.CreateSessionRequest) (*model.PracticeSession, error) {
	logger := middleware.GetLogger(ctx)

	levelStr := req.Level
	if levelStr == "" {
		levelStr = s.cfg.App.DefaultLevel
	}
	level, err := model.ParseLevel(levelStr)
	if err != nil {
		logger.Warn("Invalid level for new session", "level", levelStr)
		return nil, model.NewAppError("INVALID_LEVEL", "Level must be one of A1, A2, B1, B2, C1.", "level", model.ErrInvalidLevel)
	}

	session := &model.PracticeSession{
		SessionID:    uuid.New(),
		LearnerID:    learnerID,
		CurrentLevel: level,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.sessionRepo.Create(ctx, tx, session)
	})
	if err != nil {
		logger.Error("Failed to create practice session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to start the session.", "", err)
	}

	logger.Info("Practice session started", "session_id", session.SessionID, "level", level)
	return session, nil
}

func (s *sessionService) GetSession(ctx context.Context, learnerID, sessionID uuid.UUID) (*model.PracticeSession, error) {
	logger := middleware.GetLogger(ctx)
	session, err := s.sessionRepo.FindByID(ctx, s.db, learnerID, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SESSION_NOT_FOUND", "Practice session not found.", "", model.ErrNotFound)
		}
		logger.Error("Error finding practice session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}
	return session, nil
}

func (s *sessionService) ListSessions(ctx context.Context, learnerID uuid.UUID) ([]*model.PracticeSession, error) {
	logger := middleware.GetLogger(ctx)
	sessions, err := s.sessionRepo.FindByLearner(ctx, s.db, learnerID)
	if err != nil {
		logger.Error("Error listing practice sessions", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}
	return sessions, nil
}

// UpdateLevel changes the session's current level. History entries keep
// the level they were generated at.
func (s *sessionService) UpdateLevel(ctx context.Context, learnerID, sessionID uuid.UUID, levelStr string) (*model.PracticeSession, error) {
	logger := middleware.GetLogger(ctx)

	level, err := model.ParseLevel(levelStr)
	if err != nil {
		logger.Warn("Invalid level for session update", "level", levelStr)
		return nil, model.NewAppError("INVALID_LEVEL", "Level must be one of A1, A2, B1, B2, C1.", "level", model.ErrInvalidLevel)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.sessionRepo.UpdateLevel(ctx, tx, learnerID, sessionID, level)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SESSION_NOT_FOUND", "Practice session not found.", "", model.ErrNotFound)
		}
		logger.Error("Failed to update session level", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update the level.", "", err)
	}

	logger.Info("Session level updated", "session_id", sessionID, "level", level)
	return s.GetSession(ctx, learnerID, sessionID)
}

func (s *sessionService) EndSession(ctx context.Context, learnerID, sessionID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.sessionRepo.Delete(ctx, tx, learnerID, sessionID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("SESSION_NOT_FOUND", "Practice session not found.", "", model.ErrNotFound)
		}
		logger.Error("Failed to end practice session", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to end the session.", "", err)
	}

	logger.Info("Practice session ended", "session_id", sessionID)
	return nil
}
