package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"german_coach/internal/model"
	"german_coach/internal/webutil"
)

// validateStruct runs the shared validator on req and writes the error
// response on failure. Returns a non-nil error when the request was
// rejected.
func validateStruct(w http.ResponseWriter, logger *slog.Logger, req interface{}) error {
	err := webutil.Validator.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))

		firstErr := validationErrors[0]
		appErr := model.NewAppError(
			"VALIDATION_ERROR",
			firstErr.Translate(webutil.Trans),
			firstErr.Field(),
			model.ErrInvalidInput,
		)
		webutil.HandleError(w, logger, appErr)
		return appErr
	}

	logger.Error("Unexpected error during validation", slog.Any("error", err))
	webutil.HandleError(w, logger, err)
	return err
}
