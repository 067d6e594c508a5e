// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/folio/internal/app/system/apiresp"
	"go.uber.org/zap"
)

// Handler answers requests no route matched. Every answer uses the API's
// {"error": "..."} body.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs an errors Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// NotFound is the router's NotFound handler.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Log.Debug("no route", zap.String("method", r.Method), zap.String("path", r.URL.Path))
	apiresp.JSON(w, http.StatusNotFound, apiresp.ErrorBody{Error: "Not found"})
}

// MethodNotAllowed is the router's MethodNotAllowed handler.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	apiresp.JSON(w, http.StatusMethodNotAllowed, apiresp.ErrorBody{Error: "Method not allowed"})
}

// Recoverer turns a handler panic into a logged 500.
func (h *Handler) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				h.Log.Error("handler panic",
					zap.Any("panic", rec),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Stack("stack"))
				apiresp.JSON(w, http.StatusInternalServerError, apiresp.ErrorBody{Error: "Internal server error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
