package skills

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

func (h *Handler) load(r *http.Request) models.SkillsDoc {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()
	return shared.LoadSingleton[models.SkillsDoc](ctx, h.Store, h.Fallback, h.Log, "skills")
}

// Get handles GET /api/skills. With ?type= it returns only that list.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	skillType := strings.TrimSpace(r.URL.Query().Get("type"))
	if skillType != "" {
		if _, ok := models.SkillField(skillType); !ok {
			apiresp.Error(w, h.Log, apperror.ValidationFailed("type", "Invalid skill type"))
			return
		}
	}

	doc := h.load(r)
	if skillType == "" {
		apiresp.JSON(w, http.StatusOK, doc)
		return
	}
	list, _ := doc.List(skillType)
	if list == nil {
		list = []models.SkillItem{}
	}
	apiresp.JSON(w, http.StatusOK, list)
}

// GetDoc handles GET /api/skills/edit-skills.
func (h *Handler) GetDoc(w http.ResponseWriter, r *http.Request) {
	apiresp.JSON(w, http.StatusOK, h.load(r))
}

// PutDoc handles PUT /api/skills/edit-skills. All four lists are required.
func (h *Handler) PutDoc(w http.ResponseWriter, r *http.Request) {
	var doc models.SkillsDoc
	if err := apiresp.Decode(r, &doc); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	if res := inputval.Skills(doc); res.HasErrors() {
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
	h.Log.Info("skills document updated")
	apiresp.Message(w, "Skills data updated successfully", saved)
}

// itemBody is a single-item request. OriginalName selects the item to
// replace when it is being renamed; it defaults to Name.
type itemBody struct {
	Type         string `json:"type"`
	OriginalName string `json:"originalName,omitempty"`
	models.SkillItem
}

func decodeItem(r *http.Request) (itemBody, error) {
	var body itemBody
	if err := apiresp.Decode(r, &body); err != nil {
		return body, err
	}
	body.Name = strings.TrimSpace(body.Name)
	if res := inputval.SkillItem(body.Type, body.SkillItem); res.HasErrors() {
		return body, apperror.ValidationFailed(res.FirstField(), res.First())
	}
	return body, nil
}

// AddItem handles POST /api/skills.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	body, err := decodeItem(r)
	if err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.AddItem(ctx, body.Type, body.SkillItem); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	h.Log.Info("skill added", zap.String("type", body.Type), zap.String("name", body.Name))
	apiresp.JSON(w, http.StatusCreated, body.SkillItem)
}

// ReplaceItem handles PUT /api/skills.
func (h *Handler) ReplaceItem(w http.ResponseWriter, r *http.Request) {
	body, err := decodeItem(r)
	if err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	name := strings.TrimSpace(body.OriginalName)
	if name == "" {
		name = body.Name
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.ReplaceItem(ctx, body.Type, name, body.SkillItem); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	apiresp.Success(w)
}

// RemoveItem handles DELETE /api/skills.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	body, err := decodeItem(r)
	if err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.RemoveItem(ctx, body.Type, body.Name); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	h.Log.Info("skill removed", zap.String("type", body.Type), zap.String("name", body.Name))
	apiresp.Success(w)
}
