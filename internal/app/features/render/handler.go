// Package render serves README and markdown rendering endpoints.
package render

import (
	"context"
	"io"

	"github.com/dalemusser/folio/internal/app/system/githubapi"
	"github.com/dalemusser/folio/internal/app/system/markdown"
	"go.uber.org/zap"
)

// Engine names accepted by readme_engine and the render endpoint.
const (
	EngineFolio = "folio"
	EngineGFM   = "gfm"
)

// Engines lists every accepted engine name.
var Engines = []string{EngineFolio, EngineGFM}

// ValidEngine reports whether name is an accepted engine. Empty means folio.
func ValidEngine(name string) bool {
	return name == "" || name == EngineFolio || name == EngineGFM
}

// ReadmeSource fetches repository READMEs.
type ReadmeSource interface {
	Readme(ctx context.Context, owner, repo string) (githubapi.Readme, error)
}

// StyleSheet writes the highlighter's CSS.
type StyleSheet interface {
	WriteCSS(w io.Writer) error
}

type Handler struct {
	Readmes ReadmeSource
	Engines map[string]markdown.Engine
	// ReadmeEngine names the engine used for READMEs.
	ReadmeEngine string
	// Branch is the branch raw-content URLs point at.
	Branch string
	CSS    StyleSheet
	Log    *zap.Logger
}

// NewHandler builds a Handler with both engines. An unknown readmeEngine
// falls back to folio.
func NewHandler(readmes ReadmeSource, readmeEngine, branch string, logger *zap.Logger) *Handler {
	folio := markdown.New()
	h := &Handler{
		Readmes: readmes,
		Engines: map[string]markdown.Engine{
			EngineFolio: folio,
			EngineGFM:   markdown.NewGFM(),
		},
		ReadmeEngine: readmeEngine,
		Branch:       branch,
		Log:          logger,
	}
	if c, ok := folio.Highlighter.(StyleSheet); ok {
		h.CSS = c
	}
	if _, ok := h.Engines[readmeEngine]; !ok {
		h.ReadmeEngine = EngineFolio
	}
	return h
}

// engine returns the named engine, or folio for an empty name.
func (h *Handler) engine(name string) (markdown.Engine, bool) {
	if name == "" {
		name = EngineFolio
	}
	e, ok := h.Engines[name]
	return e, ok
}
