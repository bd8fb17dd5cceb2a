// internal/model/error.go
package model

import "errors"

// Application-level sentinel errors. Services wrap these in an AppError;
// webutil maps them to HTTP status codes.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("resource conflict")

	// Coach-specific errors.
	ErrInvalidLevel          = errors.New("invalid practice level")
	ErrIndexOutOfRange       = errors.New("exercise index out of range")
	ErrRateLimited           = errors.New("generation backend rate limited")
	ErrGenerationUnavailable = errors.New("generation backend unavailable")
	ErrUnparsableResponse    = errors.New("unparsable generation response")
)

// ErrorDetail is the error payload returned to clients.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse wraps an ErrorDetail for JSON error responses.
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError carries a client-facing error detail plus a wrapped sentinel
// error used for status code mapping.
type AppError struct {
	Detail ErrorDetail
	err    error
}

func NewAppError(code, message, field string, wrapped error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		err:    wrapped,
	}
}

func (e *AppError) Error() string {
	if e.err != nil {
		return e.Detail.Message + ": " + e.err.Error()
	}
	return e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.err
}
