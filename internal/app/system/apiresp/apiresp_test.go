package apiresp_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/folio/internal/app/system/apiresp"
	"github.com/dalemusser/folio/internal/app/system/apperror"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"
)

func TestError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
		msg  string
	}{
		{"validation", apperror.ValidationFailed("_id", "Project ID is required"), http.StatusBadRequest, "Project ID is required"},
		{"unauthorized", apperror.Unauthorized(), http.StatusUnauthorized, "Unauthorized"},
		{"not found", fmt.Errorf("update: %w", apperror.NotFound("Project")), http.StatusNotFound, "Project not found"},
		{"rate limited", apperror.TooManyRequests("slow down"), http.StatusTooManyRequests, "slow down"},
		{"too large", apperror.TooLarge(16), http.StatusRequestEntityTooLarge, "Request body exceeds 16 bytes"},
		{"store failure", errors.New("connection refused"), http.StatusInternalServerError, "connection refused"},
		{"ozzo errors", validation.Errors{"title": errors.New("cannot be blank")}, http.StatusBadRequest, "title: cannot be blank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			apiresp.Error(rec, zap.NewNop(), tt.err)

			if rec.Code != tt.want {
				t.Errorf("status: got %d, want %d", rec.Code, tt.want)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type: got %q", ct)
			}
			var body apiresp.ErrorBody
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error != tt.msg {
				t.Errorf("error: got %q, want %q", body.Error, tt.msg)
			}
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	var v map[string]any
	err := apiresp.Decode(req, &v)
	if !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecode_TooLarge(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"content":"`+strings.Repeat("x", 64)+`"}`))
	req.Body = http.MaxBytesReader(rec, req.Body, 16)

	var v map[string]any
	err := apiresp.Decode(req, &v)
	if !errors.Is(err, apperror.ErrTooLarge) {
		t.Fatalf("expected too-large error, got %v", err)
	}
	if got := apiresp.StatusFor(err); got != http.StatusRequestEntityTooLarge {
		t.Errorf("StatusFor: got %d, want %d", got, http.StatusRequestEntityTooLarge)
	}
}
