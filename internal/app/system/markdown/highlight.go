package markdown

import (
	"html"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultChromaStyle matches the one-dark look of the portfolio.
const DefaultChromaStyle = "onedark"

// Highlighter renders one fenced block to HTML.
type Highlighter interface {
	Highlight(code, lang string) string
}

// Chroma highlights with CSS classes and line numbers. The matching
// stylesheet comes from WriteCSS.
type Chroma struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChroma returns a class-based chroma highlighter for the named style.
// Unknown styles fall back to chroma's default.
func NewChroma(style string) *Chroma {
	return &Chroma{
		style: styles.Get(style),
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.WithLineNumbers(true),
			chromahtml.TabWidth(4),
		),
	}
}

// Highlight never fails: on any lexer or formatter error it returns the
// escaped code in a plain pre block.
func (c *Chroma) Highlight(code, lang string) string {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plainCode(code)
	}
	var sb strings.Builder
	if err := c.formatter.Format(&sb, c.style, it); err != nil {
		return plainCode(code)
	}
	return sb.String()
}

// WriteCSS writes the stylesheet for the highlighter's classes.
func (c *Chroma) WriteCSS(w io.Writer) error {
	return c.formatter.WriteCSS(w, c.style)
}

func plainCode(code string) string {
	return "<pre><code>" + html.EscapeString(code) + "</code></pre>"
}
