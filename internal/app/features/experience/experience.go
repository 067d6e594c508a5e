package experience

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

// List handles GET /api/experience, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	list, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Warn("experience: store unavailable, serving fallback", zap.Error(err))
		apiresp.JSON(w, http.StatusOK, h.Fallback())
		return
	}
	apiresp.JSON(w, http.StatusOK, list)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var e models.Experience
	if err := apiresp.Decode(r, &e); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	if res := inputval.Experience(e); res.HasErrors() {
		apiresp.Error(w, h.Log, apperror.ValidationFailed(res.FirstField(), res.First()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, e)
	if err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	h.Log.Info("experience created", zap.String("id", created.ID.Hex()), zap.String("company", created.Company))
	apiresp.JSON(w, http.StatusCreated, created)
}

type updateBody struct {
	shared.IDBody
	models.ExperiencePatch
}

// validate rejects blanked required fields and malformed company URLs.
func (b updateBody) validate() error {
	for field, v := range map[string]*string{"company": b.Company, "startDate": b.StartDate, "title": b.Title} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return apperror.ValidationFailed(field, field+" is required")
		}
	}
	if b.CompanyURL != nil && *b.CompanyURL != "" && !inputval.IsValidHTTPURL(*b.CompanyURL) {
		return apperror.ValidationFailed("companyUrl", "companyUrl must be an absolute http(s) URL")
	}
	return nil
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var body updateBody
	if err := apiresp.Decode(r, &body); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	id, err := body.ObjectID("Experience")
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

	if err := h.Store.Update(ctx, id, body.ExperiencePatch); err != nil {
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
	id, err := body.ObjectID("Experience")
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
	h.Log.Info("experience deleted", zap.String("id", id.Hex()))
	apiresp.Success(w)
}
