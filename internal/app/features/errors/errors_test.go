package errors_test

import (
	"net/http"
	"testing"

	apierrors "github.com/dalemusser/folio/internal/app/features/errors"
	"github.com/dalemusser/folio/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newRouter() http.Handler {
	h := apierrors.NewHandler(zap.NewNop())
	r := chi.NewRouter()
	r.Use(h.Recoverer)
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) { panic("boom") })
	return r
}

func TestErrors(t *testing.T) {
	tests := []struct {
		method, path string
		want         int
		body         string
	}{
		{http.MethodGet, "/ok", http.StatusNoContent, ""},
		{http.MethodGet, "/nope", http.StatusNotFound, `"error":"Not found"`},
		{http.MethodPost, "/ok", http.StatusMethodNotAllowed, `"error":"Method not allowed"`},
		{http.MethodGet, "/boom", http.StatusInternalServerError, `"error":"Internal server error"`},
	}
	h := newRouter()
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := testutil.NewRecorder()
			h.ServeHTTP(rec, testutil.NewRequest(tt.method, tt.path))
			rec.AssertStatus(t, tt.want)
			if tt.body != "" {
				rec.AssertContains(t, tt.body)
			}
		})
	}
}
