package stats

import (
	"net/http"
	"strings"

	"github.com/dalemusser/folio/internal/app/system/apiresp"
	"github.com/dalemusser/folio/internal/app/system/apperror"
	"github.com/dalemusser/folio/internal/app/system/githubapi"
	"github.com/dalemusser/folio/internal/app/system/leetcode"
	"github.com/dalemusser/folio/internal/app/system/markdown"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeGitHub handles GET /api/stats/github/{username}.
func (h *Handler) ServeGitHub(w http.ResponseWriter, r *http.Request) {
	user := strings.TrimSpace(chi.URLParam(r, "username"))
	if user == "" {
		apiresp.Error(w, h.Log, apperror.ValidationFailed("username", "Username is required"))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "github stats")
	defer cancel()

	s, err := h.githubStats(ctx, user)
	if err != nil {
		h.Log.Warn("github stats failed", zap.String("username", user), zap.Error(err))
		apiresp.Error(w, h.Log, apperror.Upstream("GitHub", err))
		return
	}
	apiresp.JSON(w, http.StatusOK, s)
}

type starsResponse struct {
	Stars int `json:"stars"`
}

// ServeRepoStars handles GET /api/stats/github/repo?url=.
func (h *Handler) ServeRepoStars(w http.ResponseWriter, r *http.Request) {
	owner, repo, ok := markdown.ParseGitHubRepo(r.URL.Query().Get("url"))
	if !ok {
		apiresp.Error(w, h.Log, apperror.ValidationFailed("url", "A GitHub repository URL is required"))
		return
	}
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "github stars")
	defer cancel()

	n, err := h.repoStars(ctx, owner, repo)
	if err != nil {
		if githubapi.IsNotFound(err) {
			apiresp.Error(w, h.Log, apperror.NotFound("Repository"))
			return
		}
		apiresp.Error(w, h.Log, apperror.Upstream("GitHub", err))
		return
	}
	apiresp.JSON(w, http.StatusOK, starsResponse{Stars: n})
}

// ServeLeetCode handles GET /api/stats/leetcode/{username}. Failures answer
// 500 with a zeroed body whose status is "error".
func (h *Handler) ServeLeetCode(w http.ResponseWriter, r *http.Request) {
	user := strings.TrimSpace(chi.URLParam(r, "username"))
	if user == "" {
		apiresp.JSON(w, http.StatusBadRequest, leetcode.ErrorStats("Username is required"))
		return
	}
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "leetcode stats")
	defer cancel()

	s, err := h.leetCodeStats(ctx, user)
	if err != nil {
		h.Log.Warn("leetcode stats failed", zap.String("username", user), zap.Error(err))
		apiresp.JSON(w, http.StatusInternalServerError, leetcode.ErrorStats(err.Error()))
		return
	}
	apiresp.JSON(w, http.StatusOK, s)
}
