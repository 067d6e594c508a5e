// internal/app/features/blogs/handler.go
package blogs

import (
	"context"
	"net/http"

	"github.com/dalemusser/folio/internal/app/system/apiresp"
	"github.com/dalemusser/folio/internal/app/system/apperror"
	"github.com/dalemusser/folio/internal/app/system/blogfeed"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Feed lists blog posts.
type Feed interface {
	Posts(ctx context.Context) ([]blogfeed.Card, error)
}

type Handler struct {
	Feed Feed
	Log  *zap.Logger
}

func NewHandler(feed Feed, logger *zap.Logger) *Handler {
	return &Handler{Feed: feed, Log: logger}
}

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}

// ServeList handles GET /api/blogs.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	posts, err := h.Feed.Posts(ctx)
	if err != nil {
		h.Log.Warn("blog feed failed", zap.Error(err))
		apiresp.Error(w, h.Log, apperror.Upstream("Blog feed", err))
		return
	}
	if posts == nil {
		posts = []blogfeed.Card{}
	}
	apiresp.JSON(w, http.StatusOK, posts)
}
