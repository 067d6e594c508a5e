package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/dalemusser/folio/internal/app/system/htmlsanitize"
)

var baseURLKey = parser.NewContextKey()

// GFM renders CommonMark plus GitHub extensions with goldmark. It applies
// the same URL resolution and sanitizer as Renderer but none of its theme
// classes.
type GFM struct {
	md goldmark.Markdown
}

// NewGFM returns a goldmark-backed Engine.
func NewGFM() *GFM {
	return &GFM{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithASTTransformers(util.Prioritized(urlResolver{}, 100)),
			),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Render converts content and sanitizes the result. A conversion error
// yields "".
func (g *GFM) Render(content, baseURL string) string {
	pc := parser.NewContext()
	pc.Set(baseURLKey, baseURL)

	var buf bytes.Buffer
	if err := g.md.Convert([]byte(RepairEncoding(content)), &buf, parser.WithContext(pc)); err != nil {
		return ""
	}
	return htmlsanitize.SanitizeMarkdown(buf.String())
}

type urlResolver struct{}

func (urlResolver) Transform(doc *ast.Document, _ text.Reader, pc parser.Context) {
	base, _ := pc.Get(baseURLKey).(string)
	if base == "" {
		return
	}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Link:
			v.Destination = []byte(ResolveURL(string(v.Destination), base))
		case *ast.Image:
			v.Destination = []byte(ResolveURL(string(v.Destination), base))
		}
		return ast.WalkContinue, nil
	})
}
