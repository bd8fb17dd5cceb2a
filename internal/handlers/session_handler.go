// internal/handlers/session_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"german_coach/internal/middleware"
	"german_coach/internal/model"
	"german_coach/internal/service"
	"german_coach/internal/webutil"
)

type SessionHandler struct {
	service service.SessionService
	logger  *slog.Logger
}

func NewSessionHandler(s service.SessionService, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionHandler{
		service: s,
		logger:  logger,
	}
}

// PostSession starts a new practice session.
func (h *SessionHandler) PostSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSession"))

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Authentication information is missing.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()))

	var req model.CreateSessionRequest
	if r.ContentLength > 0 {
		if err := webutil.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
			webutil.HandleError(w, logger, err)
			return
		}
	}

	session, err := h.service.StartSession(r.Context(), learnerID, &req)
	if err != nil {
		logger.Error("Error starting session in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session started successfully", slog.String("session_id", session.SessionID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, session)
}

// GetSessions lists the learner's sessions.
func (h *SessionHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSessions"))

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Authentication information is missing.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()))

	sessions, err := h.service.ListSessions(r.Context(), learnerID)
	if err != nil {
		logger.Error("Error listing sessions in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if sessions == nil {
		sessions = []*model.PracticeSession{}
	}
	logger.Info("Sessions listed successfully", slog.Int("count", len(sessions)))
	webutil.RespondWithJSON(w, http.StatusOK, sessions)
}

// GetSession returns one session.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSession"))

	learnerID, sessionID, ok := h.sessionScope(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()), slog.String("session_id", sessionID.String()))

	session, err := h.service.GetSession(r.Context(), learnerID, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Session not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting session from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, session)
}

// PutSessionLevel changes the session's current level.
func (h *SessionHandler) PutSessionLevel(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutSessionLevel"))

	learnerID, sessionID, ok := h.sessionScope(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()), slog.String("session_id", sessionID.String()))

	var req model.UpdateLevelRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if err := validateStruct(w, logger, req); err != nil {
		return
	}

	session, err := h.service.UpdateLevel(r.Context(), learnerID, sessionID, req.Level)
	if err != nil {
		logger.Error("Error updating session level in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session level updated successfully", slog.String("level", string(session.CurrentLevel)))
	webutil.RespondWithJSON(w, http.StatusOK, session)
}

// DeleteSession ends a session.
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteSession"))

	learnerID, sessionID, ok := h.sessionScope(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()), slog.String("session_id", sessionID.String()))

	if err := h.service.EndSession(r.Context(), learnerID, sessionID); err != nil {
		logger.Error("Error ending session in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session ended successfully")
	w.WriteHeader(http.StatusNoContent)
}

// sessionScope extracts the learner ID from the context and the session
// ID from the URL, writing the error response itself on failure.
func (h *SessionHandler) sessionScope(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, uuid.UUID, bool) {
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
