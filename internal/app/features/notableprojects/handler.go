package notableprojects

import (
	"context"
	"net/http"

	"github.com/dalemusser/folio/internal/app/features/shared"
	"github.com/dalemusser/folio/internal/app/resources"
	"github.com/dalemusser/folio/internal/app/system/apiresp"
	"github.com/dalemusser/folio/internal/app/system/apperror"
	"github.com/dalemusser/folio/internal/app/system/inputval"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Store is the featured-project persistence the handlers need.
type Store interface {
	List(ctx context.Context) ([]models.NotableProject, error)
	Create(ctx context.Context, p models.NotableProject) (models.NotableProject, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.NotableProjectPatch) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type Handler struct {
	Store    Store
	Fallback func() []models.NotableProject
	Log      *zap.Logger
}

func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Fallback: resources.NotableProjects, Log: logger}
}

// List handles GET /api/notable-projects in collection order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	list, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Warn("notable projects: store unavailable, serving fallback", zap.Error(err))
		apiresp.JSON(w, http.StatusOK, h.Fallback())
		return
	}
	apiresp.JSON(w, http.StatusOK, list)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var p models.NotableProject
	if err := apiresp.Decode(r, &p); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	if res := inputval.NotableProject(p); res.HasErrors() {
		apiresp.Error(w, h.Log, apperror.ValidationFailed(res.FirstField(), res.First()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, p)
	if err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	apiresp.JSON(w, http.StatusCreated, created)
}

type updateBody struct {
	shared.IDBody
	models.NotableProjectPatch
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var body updateBody
	if err := apiresp.Decode(r, &body); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	id, err := body.ObjectID("Project")
	if err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	if body.Title != nil && *body.Title == "" {
		apiresp.Error(w, h.Log, apperror.ValidationFailed("title", "title is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Update(ctx, id, body.NotableProjectPatch); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	apiresp.Success(w)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var body shared.IDBody
	if err := apiresp.Decode(r, &body); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	id, err := body.ObjectID("Project")
	if err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	apiresp.Success(w)
}
