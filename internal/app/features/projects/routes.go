package projects

import (
	"github.com/dalemusser/folio/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the router for /api/projects. Reads are public; every
// write requires an admin token.
func Routes(h *Handler, gate *auth.Gate) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)

	r.Group(func(r chi.Router) {
		r.Use(gate.RequireAdmin)
		r.Post("/", h.Create)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
		r.Post("/reorder", h.Reorder)
		r.Post("/auto-add", h.AutoAdd)
	})

	return r
}
