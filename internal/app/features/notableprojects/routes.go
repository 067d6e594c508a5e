package notableprojects

import (
	"github.com/dalemusser/folio/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, gate *auth.Gate) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.With(gate.RequireAdmin).Post("/", h.Create)
	r.With(gate.RequireAdmin).Put("/", h.Update)
	r.With(gate.RequireAdmin).Delete("/", h.Delete)
	return r
}
