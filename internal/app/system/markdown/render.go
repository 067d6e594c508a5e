// Package markdown renders README-style markdown to HTML.
//
// Rendering runs in stages: fenced code is split out and highlighted, prose
// is repaired (mojibake, line endings, control characters), tokenized into a
// block/inline tree, rendered with the theme's classes, and finally passed
// through an allow-list sanitizer. A Renderer holds no mutable state and is
// safe for concurrent use.
package markdown

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/dalemusser/folio/internal/app/system/htmlsanitize"
)

// Engine turns markdown into sanitized HTML.
type Engine interface {
	Render(content, baseURL string) string
}

// Renderer is the portfolio's own markdown dialect.
type Renderer struct {
	Theme       Theme
	Highlighter Highlighter
	// Sanitize is the final stage. Nil leaves output unsanitized.
	Sanitize func(string) string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTheme replaces the class theme.
func WithTheme(t Theme) Option { return func(r *Renderer) { r.Theme = t } }

// WithHighlighter replaces the code-fence highlighter.
func WithHighlighter(h Highlighter) Option { return func(r *Renderer) { r.Highlighter = h } }

// New returns a Renderer with the default theme, chroma highlighting and the
// markdown sanitizer policy.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		Theme:       DefaultTheme(),
		Highlighter: NewChroma(DefaultChromaStyle),
		Sanitize:    htmlsanitize.SanitizeMarkdown,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

var defaultRenderer = New()

// Render renders content with the default Renderer.
func Render(content, baseURL string) string {
	return defaultRenderer.Render(content, baseURL)
}

// Render renders and sanitizes content. Relative links and images resolve
// against baseURL when it is set.
func (r *Renderer) Render(content, baseURL string) string {
	out := r.RenderRaw(content, baseURL)
	if r.Sanitize == nil {
		return out
	}
	return r.Sanitize(out)
}

// RenderRaw runs every stage except sanitization.
func (r *Renderer) RenderRaw(content, baseURL string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	doc := Parse(content)
	w := &writer{theme: r.Theme, base: baseURL, hl: r.Highlighter}

	if len(doc) == 1 {
		if s, ok := doc[0].(Section); ok {
			// no fences: the prose goes straight into the wrapper
			w.blocks(s.Blocks)
			return w.wrap()
		}
	}
	for _, b := range doc {
		switch n := b.(type) {
		case Section:
			w.sb.WriteString("<div>")
			w.blocks(n.Blocks)
			w.sb.WriteString("</div>")
		case CodeBlock:
			w.code(n)
		}
	}
	return w.wrap()
}

/* --------------------------------- parsing -------------------------------- */

var fenceOpenRe = regexp.MustCompile("^```(\\w+)?\\n?")

// Parse splits content on code fences and tokenizes each prose section.
// An unclosed fence stays literal text; whitespace-only sections are dropped.
func Parse(content string) []Block {
	var doc []Block
	addProse := func(s string) {
		if strings.TrimSpace(s) == "" {
			return
		}
		doc = append(doc, Section{Blocks: ParseBlocks(RepairEncoding(s))})
	}

	rest := content
	var prose strings.Builder
	for {
		start := strings.Index(rest, "```")
		if start < 0 {
			break
		}
		m := fenceOpenRe.FindStringSubmatch(rest[start:])
		bodyStart := start + len(m[0])
		end := strings.Index(rest[bodyStart:], "```")
		if end < 0 {
			break
		}
		prose.WriteString(rest[:start])
		addProse(prose.String())
		prose.Reset()

		lang := strings.ToLower(m[1])
		if lang == "" {
			lang = "text"
		}
		doc = append(doc, CodeBlock{Lang: lang, Code: strings.TrimSpace(rest[bodyStart : bodyStart+end])})
		rest = rest[bodyStart+end+3:]
	}
	prose.WriteString(rest)
	addProse(prose.String())
	return doc
}

/* -------------------------------- rendering ------------------------------- */

type writer struct {
	theme Theme
	base  string
	hl    Highlighter
	sb    strings.Builder
}

func (w *writer) wrap() string {
	if w.theme.Wrapper == "" {
		return w.sb.String()
	}
	return `<div class="` + w.theme.Wrapper + `">` + w.sb.String() + "</div>"
}

func (w *writer) code(c CodeBlock) {
	var body string
	if w.hl != nil {
		body = w.hl.Highlight(c.Code, c.Lang)
	} else {
		body = plainCode(c.Code)
	}
	w.sb.WriteString("<div" + classAttr(w.theme.CodeBlock) + ">" + body + "</div>")
}

func (w *writer) blocks(bs []Block) {
	for i, b := range bs {
		if i > 0 {
			w.sb.WriteByte('\n')
		}
		w.block(b)
	}
}

func (w *writer) block(b Block) {
	t := w.theme
	switch n := b.(type) {
	case Heading:
		class := [...]string{t.H1, t.H2, t.H3, t.H4}[n.Level-1]
		tag := "h" + strconv.Itoa(n.Level)
		w.sb.WriteString("<" + tag + classAttr(class) + ">")
		w.inlines(n.Content)
		w.sb.WriteString("</" + tag + ">")

	case Paragraph:
		w.sb.WriteString("<p" + classAttr(t.Paragraph) + ">")
		w.inlines(n.Content)
		w.sb.WriteString("</p>")

	case RawHTML:
		w.sb.WriteString(rawImgSrcRe.ReplaceAllStringFunc(n.Text, w.resolveRawSrc))

	case List:
		w.list(n)

	case Table:
		w.table(n)

	case CodeBlock:
		w.code(n)
	}
}

func (w *writer) list(l List) {
	t := w.theme
	tag, class := "ul", t.BulletList
	switch l.Kind {
	case ListOrdered:
		tag, class = "ol", t.OrderedList
	case ListTask:
		class = t.TaskList
	}

	w.sb.WriteString("<" + tag + classAttr(class) + ">")
	for _, it := range l.Items {
		switch l.Kind {
		case ListTask:
			itemClass := t.TaskItem
			if it.Nested {
				itemClass = t.TaskItemNested
			}
			marker, markerClass := "☐", t.TaskUnchecked
			if it.Checked {
				marker, markerClass = "☑", t.TaskChecked
			}
			w.sb.WriteString("<li" + classAttr(itemClass) + "><span" + classAttr(markerClass) + ">" + marker + "</span>")
		case ListOrdered:
			w.sb.WriteString("<li" + classAttr(t.OrderedItem) + ">")
		default:
			itemClass := t.BulletItem
			if it.Nested {
				itemClass = t.BulletItemNested
			}
			w.sb.WriteString("<li" + classAttr(itemClass) + ">")
		}
		w.inlines(it.Content)
		w.sb.WriteString("</li>")
	}
	w.sb.WriteString("</" + tag + ">")
}

func (w *writer) table(tb Table) {
	t := w.theme
	w.sb.WriteString("<div" + classAttr(t.TableWrapper) + "><table" + classAttr(t.Table) + ">")
	w.sb.WriteString("<thead" + classAttr(t.TableHead) + "><tr>")
	for _, c := range tb.Header {
		w.sb.WriteString("<th" + classAttr(t.TableHeader) + ">")
		w.inlines(c.Content)
		w.sb.WriteString("</th>")
	}
	w.sb.WriteString("</tr></thead><tbody>")
	for _, row := range tb.Rows {
		w.sb.WriteString("<tr" + classAttr(t.TableRow) + ">")
		for _, c := range row {
			w.sb.WriteString("<td" + classAttr(t.TableCell) + ">")
			w.inlines(c.Content)
			w.sb.WriteString("</td>")
		}
		w.sb.WriteString("</tr>")
	}
	w.sb.WriteString("</tbody></table></div>")
}

func (w *writer) inlines(ns []Inline) {
	for _, n := range ns {
		w.inline(n)
	}
}

func (w *writer) inline(n Inline) {
	t := w.theme
	switch n := n.(type) {
	case Text:
		w.sb.WriteString(strings.ReplaceAll(n.Value, "\n", "<br>"))
	case CodeSpan:
		w.sb.WriteString("<code" + classAttr(t.InlineCode) + ">" + html.EscapeString(n.Code) + "</code>")
	case Image:
		w.sb.WriteString(`<img src="` + attr(ResolveURL(n.Src, w.base)) + `" alt="` + attr(n.Alt) + `"` + classAttr(t.Image) + " />")
	case RawImage:
		after := strings.TrimRight(strings.TrimSpace(n.After), "/")
		if after != "" {
			after = " " + strings.TrimSpace(after)
		}
		w.sb.WriteString("<img" + n.Before + ` src="` + attr(ResolveURL(n.Src, w.base)) + `"` + after + classAttr(t.Image) + " />")
	case Link:
		w.sb.WriteString(`<a href="` + attr(ResolveURL(n.URL, w.base)) + `" target="_blank"` + classAttr(t.Link) + ">")
		w.inlines(n.Content)
		w.sb.WriteString("</a>")
	case Strong:
		w.sb.WriteString("<strong" + classAttr(t.Strong) + ">")
		w.inlines(n.Content)
		w.sb.WriteString("</strong>")
	case Emphasis:
		w.sb.WriteString("<em" + classAttr(t.Em) + ">")
		w.inlines(n.Content)
		w.sb.WriteString("</em>")
	}
}

var rawImgSrcRe = regexp.MustCompile(`(<img[^>]*\ssrc=["'])([^"']+)(["'])`)

// resolveRawSrc rewrites a relative src inside a raw HTML block. Absolute
// URLs are untouched, so re-rendering is stable.
func (w *writer) resolveRawSrc(tag string) string {
	m := rawImgSrcRe.FindStringSubmatch(tag)
	return m[1] + ResolveURL(m[2], w.base) + m[3]
}

func attr(s string) string {
	return strings.ReplaceAll(s, `"`, "&#34;")
}
