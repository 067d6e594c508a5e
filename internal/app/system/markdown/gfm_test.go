package markdown_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalemusser/folio/internal/app/system/markdown"
)

func TestGFM_RendersTablesAndTasks(t *testing.T) {
	g := markdown.NewGFM()
	got := g.Render("| a | b |\n|---|---|\n| 1 | 2 |\n\n- [x] done\n- [ ] todo", "")

	assert.Equal(t, 2, strings.Count(got, "<th>"))
	assert.Equal(t, 2, strings.Count(got, "<td>"))
	assert.Contains(t, got, `type="checkbox"`)
}

func TestGFM_ResolvesRelativeURLs(t *testing.T) {
	const base = "https://raw.githubusercontent.com/o/r/main"
	got := markdown.NewGFM().Render("![logo](./logo.png) [doc](docs/a.md) [abs](https://x.dev)", base)

	assert.Contains(t, got, `src="`+base+`/logo.png"`)
	assert.Contains(t, got, `href="`+base+`/docs/a.md"`)
	assert.Contains(t, got, `href="https://x.dev"`)
}

func TestGFM_Sanitized(t *testing.T) {
	got := markdown.NewGFM().Render("hello <script>alert(1)</script>\n\n<iframe src=\"https://x\"></iframe>", "")

	assert.Contains(t, got, "hello")
	assert.NotContains(t, got, "<script")
	assert.NotContains(t, got, "<iframe")
}

func TestEngines_ShareInterface(t *testing.T) {
	engines := map[string]markdown.Engine{
		"folio": markdown.New(),
		"gfm":   markdown.NewGFM(),
	}
	for name, e := range engines {
		out := e.Render("**bold**", "")
		assert.Contains(t, out, "bold", name)
		assert.Contains(t, out, "<strong", name)
	}
}

func TestStripFrontMatter(t *testing.T) {
	fm, body := markdown.StripFrontMatter("---\ntitle: Hello\ntags: [go, web]\n---\n# Body\n")

	assert.Equal(t, "Hello", fm.Title)
	assert.Equal(t, []string{"go", "web"}, fm.Tags)
	assert.Equal(t, "# Body\n", body)
}

func TestStripFrontMatter_NoBlock(t *testing.T) {
	in := "# Just markdown\n\n---\n\nafter a rule"
	fm, body := markdown.StripFrontMatter(in)

	assert.Empty(t, fm.Title)
	assert.Equal(t, in, body)
}

func TestStripFrontMatter_JSONLikeContentUntouched(t *testing.T) {
	in := "{\"not\": \"front matter\"}"
	_, body := markdown.StripFrontMatter(in)
	assert.Equal(t, in, body)
}

func TestChroma_FallsBackForUnknownLanguage(t *testing.T) {
	h := markdown.NewChroma(markdown.DefaultChromaStyle)
	got := h.Highlight("a < b", "no-such-language")

	assert.Contains(t, got, "&lt;")
	assert.NotContains(t, got, "a < b")
}

func TestChroma_WriteCSS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, markdown.NewChroma(markdown.DefaultChromaStyle).WriteCSS(&buf))
	assert.Contains(t, buf.String(), ".chroma")
}
