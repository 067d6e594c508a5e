// internal/app/system/apperror/apperror.go
package apperror

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers map these to HTTP status codes in apiresp.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrTooManyRequests = errors.New("too many requests")
	ErrTooLarge        = errors.New("request too large")
	ErrUpstream        = errors.New("upstream failure")
)

// AppError carries an error kind plus the message shown to API callers.
type AppError struct {
	Err     error  // kind
	Message string // human-readable, echoed in the response body
	Field   string // optional: offending request field
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports that the named resource does not exist.
func NotFound(resource string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// ValidationFailed reports a bad request body or parameter.
func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Unauthorized reports a missing or invalid credential.
func Unauthorized() *AppError {
	return &AppError{
		Err:     ErrUnauthorized,
		Message: "Unauthorized",
	}
}

// TooManyRequests reports a rate-limited caller.
func TooManyRequests(message string) *AppError {
	return &AppError{
		Err:     ErrTooManyRequests,
		Message: message,
	}
}

// TooLarge reports a request body over limit bytes.
func TooLarge(limit int64) *AppError {
	return &AppError{
		Err:     ErrTooLarge,
		Message: fmt.Sprintf("Request body exceeds %d bytes", limit),
	}
}

// Upstream wraps a failure of a third-party service.
func Upstream(service string, err error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %w", ErrUpstream, err),
		Message: fmt.Sprintf("%s: %v", service, err),
	}
}
