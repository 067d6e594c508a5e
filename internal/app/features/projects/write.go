package projects

import (
	"context"
	"net/http"

	"github.com/dalemusser/folio/internal/app/features/shared"
	"github.com/dalemusser/folio/internal/app/system/apiresp"
	"github.com/dalemusser/folio/internal/app/system/apperror"
	"github.com/dalemusser/folio/internal/app/system/inputval"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.uber.org/zap"
)

// Create handles POST /api/projects and responds 201 with the stored record.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if err := apiresp.Decode(r, &p); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	if res := inputval.Project(p); res.HasErrors() {
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
	h.Log.Info("project created", zap.String("id", created.ID.Hex()), zap.String("title", created.Title))
	apiresp.JSON(w, http.StatusCreated, created)
}

type updateBody struct {
	shared.IDBody
	models.ProjectPatch
}

// Update handles PUT /api/projects with body {_id, ...fields}.
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
	if res := inputval.ProjectPatch(body.ProjectPatch); res.HasErrors() {
		apiresp.Error(w, h.Log, apperror.ValidationFailed(res.FirstField(), res.First()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Update(ctx, id, body.ProjectPatch); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	apiresp.Success(w)
}

// Delete handles DELETE /api/projects with body {_id}.
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
	h.Log.Info("project deleted", zap.String("id", id.Hex()))
	apiresp.Success(w)
}
