package education

import (
	"context"
	"net/http"

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

// Handler serves /api/edu. Education entries and positions of
// responsibility share one document.
type Handler struct {
	Store    shared.SingletonStore[models.EducationDoc]
	Fallback func() models.EducationDoc
	Log      *zap.Logger
}

func NewHandler(store shared.SingletonStore[models.EducationDoc], logger *zap.Logger) *Handler {
	return &Handler{Store: store, Fallback: resources.Education, Log: logger}
}

func Routes(h *Handler, gate *auth.Gate) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Get)
	r.Get("/edit-edu", h.Get)
	r.With(gate.RequireAdmin).Put("/", h.Put)
	r.With(gate.RequireAdmin).Put("/edit-edu", h.Put)
	return r
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()
	apiresp.JSON(w, http.StatusOK, shared.LoadSingleton[models.EducationDoc](ctx, h.Store, h.Fallback, h.Log, "education"))
}

// Put replaces the education document. Both lists are required.
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	var doc models.EducationDoc
	if err := apiresp.Decode(r, &doc); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	if res := inputval.Education(doc); res.HasErrors() {
		apiresp.Error(w, h.Log, apperror.ValidationFailed(res.FirstField(), res.All()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	saved, err := h.Store.Upsert(ctx, doc)
	if err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	h.Log.Info("education document updated",
		zap.Int("education", len(saved.EducationData)),
		zap.Int("responsibilities", len(saved.ResponsibilitiesData)))
	apiresp.Message(w, "Data updated successfully", saved)
}
