package projects

import (
	"context"
	"net/http"

	"github.com/dalemusser/folio/internal/app/system/apiresp"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// List handles GET /api/projects. A store failure serves the bundled
// fallback list instead of an error.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	list, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Warn("projects: store unavailable, serving fallback", zap.Error(err))
		apiresp.JSON(w, http.StatusOK, h.Fallback())
		return
	}
	apiresp.JSON(w, http.StatusOK, list)
}
