package render

import (
	"github.com/dalemusser/folio/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
)

// ReadmeRoutes mounts /api/readme.
func ReadmeRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeReadme)
	return r
}

// MarkdownRoutes mounts /api/markdown. Rendering is limited per client;
// the stylesheet is not.
func MarkdownRoutes(h *Handler, limiter *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()
	r.With(limiter.Middleware).Post("/render", h.HandleRender)
	r.Get("/highlight.css", h.ServeCSS)
	return r
}
