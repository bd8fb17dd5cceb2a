//go:generate mockery --name ExerciseService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"german_coach/internal/config"
	"german_coach/internal/generation"
	"german_coach/internal/middleware"
	"german_coach/internal/model"
	"german_coach/internal/repository"
)

// ExerciseService drives the two practice rounds: generating a new
// exercise and evaluating a submitted answer. The generation backend is
// called before anything is written, so a failed call leaves the session
// history untouched.
type ExerciseService interface {
	CreateExercise(ctx context.Context, learnerID, sessionID uuid.UUID, req *model.CreateExerciseRequest) (*model.ExerciseResult, error)
	ListExercises(ctx context.Context, learnerID, sessionID uuid.UUID) ([]*model.ExerciseResult, error)
	SubmitAnswer(ctx context.Context, learnerID, sessionID uuid.UUID, position int, req *model.SubmitAnswerRequest) (*model.ExerciseResult, error)
}

type exerciseService struct {
	db           *gorm.DB
	sessionRepo  repository.SessionRepository
	exerciseRepo repository.ExerciseRepository
	generator    generation.Generator
	cfg          *config.Config
}

func NewExerciseService(db *gorm.DB, sessionRepo repository.SessionRepository, exerciseRepo repository.ExerciseRepository, generator generation.Generator, cfg *config.Config) ExerciseService {
	return &exerciseService{
		db:           db,
		sessionRepo:  sessionRepo,
		exerciseRepo: exerciseRepo,
		generator:    generator,
		cfg:          cfg,
	}
}

// CreateExercise generates a fresh exercise and appends it to the session
// history.
func (s *exerciseService) CreateExercise(ctx context.Context, learnerID, sessionID uuid.UUID, req *model.CreateExerciseRequest) (*model.ExerciseResult, error) {
	logger := middleware.GetLogger(ctx)

	session, err := s.findSession(ctx, learnerID, sessionID)
	if err != nil {
		return nil, err
	}

	exerciseType, err := model.ParseExerciseType(req.ExerciseType)
	if err != nil {
		logger.Warn("Invalid exercise type", "exercise_type", req.ExerciseType)
		return nil, model.NewAppError("INVALID_EXERCISE_TYPE", "Exercise type must be 'vocabulary' or 'exam_task'.", "exercise_type", model.ErrInvalidInput)
	}

	level := session.CurrentLevel
	if req.Level != "" {
		level, err = model.ParseLevel(req.Level)
		if err != nil {
			logger.Warn("Invalid level for exercise", "level", req.Level)
			return nil, model.NewAppError("INVALID_LEVEL", "Level must be one of A1, A2, B1, B2, C1.", "level", model.ErrInvalidLevel)
		}
	}

	// Goethe exam tasks only exist for B2 and C1; lower levels fall back
	// to B2.
	if exerciseType == model.ExerciseExamTask && !level.AtLeast(model.LevelB2) {
		logger.Info("Exam task below B2 requested, using B2", "requested_level", level)
		level = model.LevelB2
	}

	prompt, err := generation.BuildExercisePrompt(level, exerciseType)
	if err != nil {
		return nil, model.NewAppError("INVALID_LEVEL", "Level must be one of A1, A2, B1, B2, C1.", "level", model.ErrInvalidLevel)
	}

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		logger.Error("Exercise generation failed", "error", err, "level", level, "exercise_type", exerciseType)
		return nil, mapGenerationError(err)
	}

	parsed, err := generation.ParseExercise(raw)
	if err != nil {
		logger.Error("Failed to parse generated exercise", "error", err)
		return nil, model.NewAppError("UNPARSABLE_RESPONSE", "The generation backend returned an unusable response.", "", model.ErrUnparsableResponse)
	}

	exercise := &model.ExerciseResult{
		ExerciseID: uuid.New(),
		SessionID:  session.SessionID,
		LearnerID:  learnerID,
		Level:      level,
		Type:       exerciseType,
		PromptText: parsed.PromptText,
		Feedback:   parsed.Feedback,
		Hint:       parsed.Hint,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := s.exerciseRepo.CountBySession(ctx, tx, session.SessionID)
		if err != nil {
			return err
		}
		exercise.Position = int(count)
		return s.exerciseRepo.Create(ctx, tx, exercise)
	})
	if err != nil {
		logger.Error("Failed to persist generated exercise", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save the exercise.", "", err)
	}

	logger.Info("Exercise created",
		"session_id", session.SessionID,
		"position", exercise.Position,
		"level", level,
		"exercise_type", exerciseType,
	)
	return exercise, nil
}

// ListExercises returns the session history in order, capped at the
// configured history limit.
func (s *exerciseService) ListExercises(ctx context.Context, learnerID, sessionID uuid.UUID) ([]*model.ExerciseResult, error) {
	logger := middleware.GetLogger(ctx)

	session, err := s.findSession(ctx, learnerID, sessionID)
	if err != nil {
		return nil, err
	}

	exercises, err := s.exerciseRepo.FindBySession(ctx, s.db, session.SessionID, s.cfg.App.HistoryLimit)
	if err != nil {
		logger.Error("Failed to list exercises", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}
	return exercises, nil
}

// SubmitAnswer records the learner's answer on the addressed history
// entry and fills in the generated feedback. Other entries are never
// touched.
func (s *exerciseService) SubmitAnswer(ctx context.Context, learnerID, sessionID uuid.UUID, position int, req *model.SubmitAnswerRequest) (*model.ExerciseResult, error) {
	logger := middleware.GetLogger(ctx)

	session, err := s.findSession(ctx, learnerID, sessionID)
	if err != nil {
		return nil, err
	}

	exercise, err := s.exerciseRepo.FindByPosition(ctx, s.db, session.SessionID, position)
	if err != nil {
		if errors.Is(err, model.ErrIndexOutOfRange) {
			logger.Warn("Answer submitted for unknown exercise position", "position", position)
			return nil, model.NewAppError("EXERCISE_NOT_FOUND", "No exercise exists at this position.", "", model.ErrIndexOutOfRange)
		}
		logger.Error("Failed to find exercise by position", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	if exercise.Answered() {
		logger.Warn("Exercise already answered", "position", position)
		return nil, model.NewAppError("ALREADY_ANSWERED", "This exercise has already been answered.", "", model.ErrConflict)
	}

	prompt, err := generation.BuildFeedbackPrompt(exercise.Level, exercise.Type, exercise.PromptText, req.Answer)
	if err != nil {
		logger.Error("Failed to build feedback prompt", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		logger.Error("Feedback generation failed", "error", err, "position", position)
		return nil, mapGenerationError(err)
	}

	feedback, hint, err := generation.ParseFeedback(raw)
	if err != nil {
		logger.Error("Failed to parse generated feedback", "error", err)
		return nil, model.NewAppError("UNPARSABLE_RESPONSE", "The generation backend returned an unusable response.", "", model.ErrUnparsableResponse)
	}

	answer := req.Answer
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.exerciseRepo.UpdateAnswer(ctx, tx, exercise.ExerciseID, map[string]interface{}{
			"user_answer": &answer,
			"feedback":    feedback,
			"hint":        hint,
		})
	})
	if err != nil {
		logger.Error("Failed to persist answer and feedback", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save the answer.", "", err)
	}

	exercise.UserAnswer = &answer
	exercise.Feedback = feedback
	exercise.Hint = hint

	logger.Info("Answer recorded", "session_id", session.SessionID, "position", position)
	return exercise, nil
}

func (s *exerciseService) findSession(ctx context.Context, learnerID, sessionID uuid.UUID) (*model.PracticeSession, error) {
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

// mapGenerationError converts generation backend errors into the
// client-facing taxonomy.
func mapGenerationError(err error) error {
	switch {
	case errors.Is(err, generation.ErrRateLimited):
		return model.NewAppError("GENERATION_RATE_LIMITED", "The generation backend is rate limited. Please try again shortly.", "", model.ErrRateLimited)
	case errors.Is(err, generation.ErrInvalidResponse):
		return model.NewAppError("UNPARSABLE_RESPONSE", "The generation backend returned an unusable response.", "", model.ErrUnparsableResponse)
	case errors.Is(err, generation.ErrContentBlocked):
		return model.NewAppError("GENERATION_UNAVAILABLE", "The generation backend refused this request.", "", model.ErrGenerationUnavailable)
	default:
		return model.NewAppError("GENERATION_UNAVAILABLE", "The generation backend is currently unavailable.", "", model.ErrGenerationUnavailable)
	}
}
