package generation

import "errors"

// Errors returned by the generation package and its backends.
var (
	// ErrTransientFailure covers timeouts and transport failures that
	// might resolve on retry.
	ErrTransientFailure = errors.New("transient generation backend failure")

	// ErrRateLimited is returned when the backend throttles us.
	ErrRateLimited = errors.New("generation backend rate limited")

	// ErrInvalidResponse is returned when the backend answer is empty or
	// cannot be interpreted.
	ErrInvalidResponse = errors.New("invalid response from generation backend")

	// ErrContentBlocked is returned when the backend refuses the request
	// via its safety filters.
	ErrContentBlocked = errors.New("content blocked by generation backend safety filters")

	// ErrInvalidConfig is returned when the backend configuration is unusable.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
