// internal/app/system/apiresp/apiresp.go
package apiresp

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dalemusser/folio/internal/app/system/apperror"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"
)

// ErrorBody is the shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Success writes {"success": true}.
func Success(w http.ResponseWriter) {
	JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Message writes {"message": msg, "data": data}.
func Message(w http.ResponseWriter, msg string, data any) {
	JSON(w, http.StatusOK, map[string]any{"message": msg, "data": data})
}

// StatusFor maps an error to its HTTP status code.
func StatusFor(err error) int {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperror.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrTooManyRequests):
		return http.StatusTooManyRequests
	case errors.Is(err, apperror.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

// Error maps err to a status code and writes {"error": "..."}.
// Server-side failures are logged; the underlying message is echoed so the
// admin panel can show it.
func Error(w http.ResponseWriter, log *zap.Logger, err error) {
	status := StatusFor(err)
	body := ErrorBody{Error: err.Error()}

	var appErr *apperror.AppError
	var verrs validation.Errors
	switch {
	case errors.As(err, &appErr):
		body.Error = appErr.Message
		body.Field = appErr.Field
	case errors.As(err, &verrs):
		body.Field, body.Error = firstValidationError(verrs)
	}

	if status >= http.StatusInternalServerError && log != nil {
		log.Error("request failed", zap.Int("status", status), zap.Error(err))
	}
	JSON(w, status, body)
}

// firstValidationError picks a deterministic entry out of an ozzo error map.
func firstValidationError(verrs validation.Errors) (string, string) {
	field := ""
	for k := range verrs {
		if field == "" || k < field {
			field = k
		}
	}
	if field == "" {
		return "", "Missing required fields"
	}
	return field, field + ": " + verrs[field].Error()
}

// Decode reads a JSON request body into v. A malformed body is a validation
// error; a body cut off by http.MaxBytesReader is a 413.
func Decode(r *http.Request, v any) error {
	if r.Body == nil {
		return apperror.ValidationFailed("", "Request body is required")
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperror.TooLarge(tooLarge.Limit)
		}
		return apperror.ValidationFailed("", "Invalid JSON body: "+err.Error())
	}
	return nil
}
