package stats

import (
	"github.com/dalemusser/folio/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the proxies under limiter.
func Routes(h *Handler, limiter *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()
	r.Use(limiter.Middleware)
	r.Get("/github/repo", h.ServeRepoStars)
	r.Get("/github/{username}", h.ServeGitHub)
	r.Get("/leetcode/{username}", h.ServeLeetCode)
	return r
}
