package projects

import (
	"context"
	"net/http"

	"github.com/dalemusser/folio/internal/app/features/shared"
	"github.com/dalemusser/folio/internal/app/system/apiresp"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type reorderBody struct {
	ProjectIDs []string `json:"projectIds"`
}

// Reorder handles POST /api/projects/reorder. Each listed project's position
// becomes its 1-based index in projectIds.
func (h *Handler) Reorder(w http.ResponseWriter, r *http.Request) {
	var body reorderBody
	if err := apiresp.Decode(r, &body); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	ids, err := shared.ParseIDs("projectIds", body.ProjectIDs)
	if err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	matched, err := h.Store.Reorder(ctx, ids)
	if err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	h.Log.Info("projects reordered", zap.Int("requested", len(ids)), zap.Int64("matched", matched))
	apiresp.Success(w)
}
