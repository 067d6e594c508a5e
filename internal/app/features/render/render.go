package render

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/dalemusser/folio/internal/app/system/apiresp"
	"github.com/dalemusser/folio/internal/app/system/apperror"
	"github.com/dalemusser/folio/internal/app/system/githubapi"
	"github.com/dalemusser/folio/internal/app/system/markdown"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type readmeResponse struct {
	HTML        string   `json:"html"`
	BaseURL     string   `json:"baseUrl"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// ServeReadme handles GET /api/readme?githubLink=. Relative links in the
// README resolve against the repository's raw-content URL.
func (h *Handler) ServeReadme(w http.ResponseWriter, r *http.Request) {
	link := strings.TrimSpace(r.URL.Query().Get("githubLink"))
	owner, repo, ok := markdown.ParseGitHubRepo(link)
	if !ok {
		apiresp.Error(w, h.Log, apperror.ValidationFailed("githubLink", "A GitHub repository link is required"))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "fetch readme")
	defer cancel()

	rd, err := h.Readmes.Readme(ctx, owner, repo)
	if err != nil {
		if githubapi.IsNotFound(err) {
			apiresp.Error(w, h.Log, apperror.NotFound("README"))
			return
		}
		h.Log.Warn("readme fetch failed", zap.String("repo", owner+"/"+repo), zap.Error(err))
		apiresp.Error(w, h.Log, apperror.Upstream("GitHub", err))
		return
	}

	fm, body := markdown.StripFrontMatter(rd.Content)
	base := markdown.GitHubRawBase(link, h.Branch)
	engine, _ := h.engine(h.ReadmeEngine)

	apiresp.JSON(w, http.StatusOK, readmeResponse{
		HTML:        engine.Render(body, base),
		BaseURL:     base,
		Title:       fm.Title,
		Description: fm.Description,
		Tags:        fm.Tags,
	})
}

// MaxRenderBytes caps the JSON body of a render request.
const MaxRenderBytes = 1 << 20

type renderBody struct {
	Content string `json:"content"`
	BaseURL string `json:"baseUrl"`
	Engine  string `json:"engine,omitempty"`
}

// HandleRender handles POST /api/markdown/render. Empty content renders to
// an empty string.
func (h *Handler) HandleRender(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRenderBytes)
	var body renderBody
	if err := apiresp.Decode(r, &body); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	engine, ok := h.engine(body.Engine)
	if !ok {
		apiresp.Error(w, h.Log, apperror.ValidationFailed("engine", "engine must be one of: "+strings.Join(Engines, ", ")))
		return
	}
	_, content := markdown.StripFrontMatter(body.Content)
	apiresp.JSON(w, http.StatusOK, map[string]string{"html": engine.Render(content, body.BaseURL)})
}

// ServeCSS handles GET /api/markdown/highlight.css.
func (h *Handler) ServeCSS(w http.ResponseWriter, r *http.Request) {
	if h.CSS == nil {
		apiresp.Error(w, h.Log, apperror.NotFound("Stylesheet"))
		return
	}
	var buf bytes.Buffer
	if err := h.CSS.WriteCSS(&buf); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(buf.Bytes())
}
