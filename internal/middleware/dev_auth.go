// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"german_coach/internal/model"
	"german_coach/internal/webutil"
)

// DevLearnerContextMiddleware is a development-only replacement for JWT
// auth. It reads the learner ID from the X-Learner-ID header without any
// database validation.
func DevLearnerContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		learnerIDStr := r.Header.Get("X-Learner-ID")
		if learnerIDStr == "" {
			logger.Warn("[DEV AUTH] Failed: X-Learner-ID header missing")
			appErr := model.NewAppError("UNAUTHORIZED", "[DEV] Missing X-Learner-ID header.", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		learnerID, err := uuid.Parse(learnerIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Failed: Invalid X-Learner-ID format", "value", learnerIDStr)
			appErr := model.NewAppError("UNAUTHORIZED", "[DEV] Invalid X-Learner-ID format.", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		ctx := context.WithValue(r.Context(), model.LearnerIDKey, learnerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
