package skills

import (
	"github.com/dalemusser/folio/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, gate *auth.Gate) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	r.Get("/edit-skills", h.GetDoc)

	r.Group(func(r chi.Router) {
		r.Use(gate.RequireAdmin)
		r.Post("/", h.AddItem)
		r.Put("/", h.ReplaceItem)
		r.Delete("/", h.RemoveItem)
		r.Put("/edit-skills", h.PutDoc)
	})
	return r
}
