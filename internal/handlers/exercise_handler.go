// internal/handlers/exercise_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"german_coach/internal/middleware"
	"german_coach/internal/model"
	"german_coach/internal/service"
	"german_coach/internal/webutil"
)

type ExerciseHandler struct {
	service service.ExerciseService
	logger  *slog.Logger
}

func NewExerciseHandler(s service.ExerciseService, logger *slog.Logger) *ExerciseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExerciseHandler{
		service: s,
		logger:  logger,
	}
}

// PostExercise generates a new exercise in the session.
func (h *ExerciseHandler) PostExercise(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostExercise"))

	learnerID, sessionID, ok := h.exerciseScope(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()), slog.String("session_id", sessionID.String()))

	var req model.CreateExerciseRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if err := validateStruct(w, logger, req); err != nil {
		return
	}

	exercise, err := h.service.CreateExercise(r.Context(), learnerID, sessionID, &req)
	if err != nil {
		logger.Error("Error creating exercise in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Exercise created successfully",
		slog.Int("position", exercise.Position),
		slog.String("exercise_type", string(exercise.Type)),
	)
	webutil.RespondWithJSON(w, http.StatusCreated, exercise)
}

// GetExercises returns the session's exercise history.
func (h *ExerciseHandler) GetExercises(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetExercises"))

	learnerID, sessionID, ok := h.exerciseScope(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()), slog.String("session_id", sessionID.String()))

	exercises, err := h.service.ListExercises(r.Context(), learnerID, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Session not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error listing exercises in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	if exercises == nil {
		exercises = []*model.ExerciseResult{}
	}
	logger.Info("Exercises listed successfully", slog.Int("count", len(exercises)))
	webutil.RespondWithJSON(w, http.StatusOK, exercises)
}

// PostAnswer submits the learner's answer for the exercise at the given
// position in the session history.
func (h *ExerciseHandler) PostAnswer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostAnswer"))

	learnerID, sessionID, ok := h.exerciseScope(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()), slog.String("session_id", sessionID.String()))

	indexStr := chi.URLParam(r, "index")
	position, err := strconv.Atoi(indexStr)
	if err != nil || position < 0 {
		logger.Warn("Invalid exercise index in URL", slog.String("index_str", indexStr))
		appErr := model.NewAppError("INVALID_URL_PARAM", "index must be a non-negative integer.", "index", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.Int("position", position))

	var req model.SubmitAnswerRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if err := validateStruct(w, logger, req); err != nil {
		return
	}

	exercise, err := h.service.SubmitAnswer(r.Context(), learnerID, sessionID, position, &req)
	if err != nil {
		if errors.Is(err, model.ErrIndexOutOfRange) {
			logger.Info("Answer submitted for unknown position", slog.Any("error", err))
		} else {
			logger.Error("Error submitting answer in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Answer submitted successfully")
	webutil.RespondWithJSON(w, http.StatusOK, exercise)
}

func (h *ExerciseHandler) exerciseScope(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, uuid.UUID, bool) {
	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Authentication information is missing.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, uuid.Nil, false
	}

	sessionIDStr := chi.URLParam(r, "session_id")
	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		logger.Warn("Invalid session ID format in URL", slog.String("session_id_str", sessionIDStr))
		appErr := model.NewAppError("INVALID_URL_PARAM", "session_id is not a valid UUID.", "session_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, uuid.Nil, false
	}

	return learnerID, sessionID, true
}
