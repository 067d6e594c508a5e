// internal/app/system/htmlsanitize/htmlsanitize.go
package htmlsanitize

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugc      = newUGCPolicy()
	markdown = newMarkdownPolicy()
)

// newUGCPolicy is the policy for HTML typed by the admin (experience bullet
// points and similar rich-text fields).
func newUGCPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()

	tableEls := []string{"table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption", "col", "colgroup"}
	p.AllowAttrs("class").OnElements(tableEls...)
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	p.AllowStyles("width", "text-align", "vertical-align", "border", "border-collapse", "padding", "background-color").
		OnElements(tableEls...)

	p.AllowElements("u", "s", "sub", "sup", "mark")
	return p
}

// newMarkdownPolicy allows exactly what the markdown renderer emits: its own
// tags, their class attributes, target on links and http(s) images.
// target="_blank" links get rel="noopener noreferrer".
func newMarkdownPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"div", "p", "br", "hr",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"strong", "em", "b", "i", "u", "s", "del", "sub", "sup", "mark",
		"code", "pre", "span", "blockquote",
		"ul", "ol", "li", "input",
		"table", "thead", "tbody", "tr", "th", "td",
		"details", "summary", "picture", "source",
	)
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("align").OnElements("p", "div", "h1", "h2", "h3", "td", "th", "img")
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	p.AllowAttrs("start").OnElements("ol")
	p.AllowAttrs("type").Matching(regexp.MustCompile(`^checkbox$`)).OnElements("input")
	p.AllowAttrs("checked", "disabled").Matching(regexp.MustCompile(`^(|checked|disabled|true)$`)).OnElements("input")

	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	p.AllowAttrs("src", "alt", "title", "width", "height").OnElements("img")
	p.AllowAttrs("srcset", "media").OnElements("source")
	p.AllowURLSchemes("http", "https", "mailto")
	p.AllowRelativeURLs(true)
	p.RequireParseableURLs(true)
	p.RequireNoReferrerOnLinks(true)

	return p
}

// Sanitize returns s with anything outside the rich-text allow-list removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return ugc.Sanitize(s)
}

// SanitizeMarkdown is the final stage of the markdown renderer.
func SanitizeMarkdown(s string) string {
	if s == "" {
		return ""
	}
	return markdown.Sanitize(s)
}

// SanitizeAll applies Sanitize to every entry, dropping entries that end up blank.
func SanitizeAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if clean := strings.TrimSpace(Sanitize(s)); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}
