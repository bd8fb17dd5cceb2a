// internal/handlers/auth_handler.go
package handlers

import (
	"net/http"

	"german_coach/internal/middleware"
	"german_coach/internal/model"
	"german_coach/internal/service"
	"german_coach/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Register creates a new learner account and triggers the verification
// email.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.RegisterRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}
	if err := validateStruct(w, logger, req); err != nil {
		return
	}

	learner, err := h.service.Register(r.Context(), &req)
	if err != nil {
		logger.Error("Registration process failed in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Registration request successful. Verification email sent.")
	webutil.RespondWithJSON(w, http.StatusCreated, &model.LearnerResponse{
		LearnerID: learner.LearnerID,
		Name:      learner.Name,
		Email:     learner.Email,
		IsActive:  learner.IsActive,
		CreatedAt: learner.CreatedAt,
	})
}

// VerifyAccount activates the account behind the given token.
func (h *AuthHandler) VerifyAccount(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	token := r.URL.Query().Get("token")
	if token == "" {
		logger.Warn("Verification attempt with no token")
		appErr := model.NewAppError("INVALID_REQUEST", "A verification token is required.", "token", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	// Log only the token prefix.
	logger = logger.With("token_prefix", token[:min(8, len(token))])

	logger.Info("Attempting to verify account")
	if err := h.service.VerifyAccount(r.Context(), token); err != nil {
		logger.Error("Account verification failed in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Account successfully verified")
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Your account has been activated. You can log in now.",
	})
}

// Login authenticates the learner and returns a JWT.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.LoginRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode login request body", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}
	if err := validateStruct(w, logger, req); err != nil {
		return
	}

	loginResponse, err := h.service.Login(r.Context(), &req)
	if err != nil {
		// The service already logged the reason.
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, loginResponse)
}

// GetMe returns the authenticated learner's own profile.
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	learner, err := h.service.GetLearner(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, &model.LearnerResponse{
		LearnerID: learner.LearnerID,
		Name:      learner.Name,
		Email:     learner.Email,
		IsActive:  learner.IsActive,
		CreatedAt: learner.CreatedAt,
	})
}

// RequestPasswordReset mails a reset link when the address is known.
// The response does not reveal whether the address is registered.
func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.ForgotPasswordRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode forgot-password request body", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}
	if err := validateStruct(w, logger, req); err != nil {
		return
	}

	if err := h.service.RequestPasswordReset(r.Context(), req.Email); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "If the address is registered, a password reset link has been sent.",
	})
}

// ResetPassword sets a new password using a reset token.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.ResetPasswordRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode reset-password request body", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}
	if err := validateStruct(w, logger, req); err != nil {
		return
	}

	if err := h.service.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Your password has been updated.",
	})
}
