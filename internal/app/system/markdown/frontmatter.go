package markdown

import (
	"strings"

	"github.com/adrg/frontmatter"
)

// FrontMatter is the subset of a YAML front-matter block folio reads.
type FrontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

// StripFrontMatter splits a leading YAML block ("---" line, YAML, "---"
// line) off content. Content without one, or with one that does not parse,
// is returned unchanged with an empty FrontMatter.
func StripFrontMatter(content string) (FrontMatter, string) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(normalized, "---\n") {
		return FrontMatter{}, content
	}

	var fm FrontMatter
	body, err := frontmatter.Parse(strings.NewReader(normalized), &fm)
	if err != nil {
		return FrontMatter{}, content
	}
	return fm, string(body)
}
