package responsibilities

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/folio/internal/app/features/shared"
	"github.com/dalemusser/folio/internal/app/system/apiresp"
	"github.com/dalemusser/folio/internal/app/system/apperror"
	"github.com/dalemusser/folio/internal/app/system/inputval"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.uber.org/zap"
)

// List handles GET /api/responsibilities. A store failure serves the
// embedded list instead of an error.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	list, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Warn("responsibilities: store unavailable, serving fallback", zap.Error(err))
		apiresp.JSON(w, http.StatusOK, h.Fallback())
		return
	}
	apiresp.JSON(w, http.StatusOK, list)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.Responsibility
	if err := apiresp.Decode(r, &in); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	if res := inputval.Responsibility(in); res.HasErrors() {
		apiresp.Error(w, h.Log, apperror.ValidationFailed(res.FirstField(), res.First()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, in)
	if err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	h.Log.Info("responsibility created", zap.String("id", created.ID.Hex()), zap.String("title", created.Title))
	apiresp.JSON(w, http.StatusCreated, created)
}

type updateBody struct {
	shared.IDBody
	models.ResponsibilityPatch
}

// validate rejects blanked required fields and unknown types.
func (b updateBody) validate() error {
	for field, v := range map[string]*string{"title": b.Title, "organization": b.Organization, "duration": b.Duration} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return apperror.ValidationFailed(field, field+" is required")
		}
	}
	if b.Type != nil {
		for _, t := range models.ResponsibilityTypes {
			if *b.Type == t {
				return nil
			}
		}
		return apperror.ValidationFailed("type", "type must be one of: "+strings.Join(models.ResponsibilityTypes, ", "))
	}
	return nil
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var body updateBody
	if err := apiresp.Decode(r, &body); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	id, err := body.ObjectID("Responsibility")
	if err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	if err := body.validate(); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Update(ctx, id, body.ResponsibilityPatch); err != nil {
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
	id, err := body.ObjectID("Responsibility")
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
	h.Log.Info("responsibility deleted", zap.String("id", id.Hex()))
	apiresp.Success(w)
}
