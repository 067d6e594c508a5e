package experience

import (
	"github.com/dalemusser/folio/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the experience endpoints. Writes require an admin token.
func Routes(h *Handler, gate *auth.Gate) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Group(func(r chi.Router) {
		r.Use(gate.RequireAdmin)
		r.Post("/", h.Create)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
	})
	return r
}
