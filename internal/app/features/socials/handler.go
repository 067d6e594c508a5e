package socials

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/folio/internal/app/features/shared"
	"github.com/dalemusser/folio/internal/app/resources"
	"github.com/dalemusser/folio/internal/app/system/apiresp"
	"github.com/dalemusser/folio/internal/app/system/apperror"
	"github.com/dalemusser/folio/internal/app/system/auth"
	"github.com/dalemusser/folio/internal/app/system/inputval"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves /api/socials.
type Handler struct {
	Store    shared.SingletonStore[models.Socials]
	Fallback func() models.Socials
	Log      *zap.Logger
}

func NewHandler(store shared.SingletonStore[models.Socials], logger *zap.Logger) *Handler {
	return &Handler{Store: store, Fallback: resources.Socials, Log: logger}
}

func Routes(h *Handler, gate *auth.Gate) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Get)
	r.With(gate.RequireAdmin).Put("/", h.Put)
	return r
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()
	apiresp.JSON(w, http.StatusOK, shared.LoadSingleton[models.Socials](ctx, h.Store, h.Fallback, h.Log, "socials"))
}

// Put upserts the social links. Fields left empty keep their stored value.
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	var s models.Socials
	if err := apiresp.Decode(r, &s); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	s.ResumeLink = strings.TrimSpace(s.ResumeLink)
	if s.ResumeLink != "" && !inputval.IsValidHTTPURL(s.ResumeLink) {
		apiresp.Error(w, h.Log, apperror.ValidationFailed("ResumeLink", "ResumeLink must be an absolute http(s) URL"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	saved, err := h.Store.Upsert(ctx, s)
	if err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	apiresp.Message(w, "Socials updated successfully", saved)
}
