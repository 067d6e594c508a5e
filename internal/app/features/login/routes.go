// internal/app/features/login/routes.go
package login

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", h.HandleLogin)
	r.With(h.Gate.LoadAdmin).Get("/check", h.ServeCheck)
	r.Post("/logout", h.HandleLogout)
	return r
}
