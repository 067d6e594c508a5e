// Package classifier turns raw repository records from the stats service into
// project records using keyword heuristics, and runs that conversion as a
// batch job that creates the projects.
package classifier

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
)

// describeKeywords mark a README line as a usable one-line description.
var describeKeywords = []string{
	"is a", "provides", "features", "platform", "application", "tool", "system",
}

var completionKeywords = []string{
	"complete", "finished", "stable", "production", "deployed",
	"live demo", "live site", "working demo", "final version",
}

var wipKeywords = []string{
	"todo", "in progress", "under development", "coming soon",
	"work in progress", "development", "beta", "alpha",
}

var planningKeywords = []string{
	"planned", "concept", "idea", "proposal", "design",
	"coming soon", "future", "roadmap",
}

// Vocabulary is the list of technologies searched for in READMEs, in the
// order they are reported.
var Vocabulary = []string{
	"python", "javascript", "typescript", "java", "c++", "c#", "go", "rust", "php", "ruby", "swift", "kotlin",
	"react", "next.js", "vue", "angular", "svelte", "nuxt", "gatsby", "ember",
	"node.js", "express", "fastapi", "django", "flask", "spring", "laravel", "rails", "asp.net",
	"postgresql", "mongodb", "mysql", "redis", "sqlite", "elasticsearch", "cassandra", "dynamodb",
	"docker", "kubernetes", "aws", "azure", "gcp", "vercel", "netlify", "heroku", "digitalocean",
	"tailwind", "bootstrap", "material-ui", "chakra", "styled-components", "sass", "less",
	"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "chart.js", "d3.js", "lodash",
	"git", "github", "gitlab", "jenkins", "github actions", "gitlab ci", "travis ci",
	"webpack", "vite", "babel", "eslint", "prettier", "jest", "cypress", "storybook",
}

// Describe builds a one-line description. A README line that reads like a
// sentence about the project wins over the synthesized default.
func Describe(title string, languages []string, readme string) string {
	desc := fmt.Sprintf("A %s project", title)
	if len(languages) > 0 {
		top := languages
		if len(top) > 3 {
			top = top[:3]
		}
		desc += " built with " + strings.Join(top, ", ")
	}

	for _, line := range strings.Split(readme, "\n") {
		line = strings.TrimSpace(line)
		if line == "" ||
			strings.HasPrefix(line, "#") ||
			strings.HasPrefix(line, "---") ||
			strings.HasPrefix(line, "[") {
			continue
		}
		if n := utf8.RuneCountInString(line); n <= 30 || n >= 200 {
			continue
		}
		if containsAny(strings.ToLower(line), describeKeywords) {
			return line
		}
	}
	return desc
}

// Status classifies a repository as Completed, In Progress or Planned.
// README keywords decide first (completion, then work in progress, then
// planning); commit counts decide when no keyword matches.
func Status(liveURL string, commits int, readme string) string {
	lower := strings.ToLower(readme)
	switch {
	case containsAny(lower, completionKeywords):
		return models.StatusCompleted
	case containsAny(lower, wipKeywords):
		return models.StatusInProgress
	case containsAny(lower, planningKeywords):
		return models.StatusPlanned
	case liveURL != "" && commits > 50:
		return models.StatusCompleted
	case commits > 5:
		return models.StatusInProgress
	}
	return models.StatusPlanned
}

// TechStack unions the detected languages with the vocabulary terms found in
// the README. Duplicates are dropped case-insensitively; the first spelling
// wins, so detected languages keep their capitalization.
func TechStack(languages []string, readme string) []string {
	lower := strings.ToLower(readme)

	out := make([]string, 0, len(languages))
	seen := make(map[string]bool, len(languages))
	add := func(tech string) {
		tech = strings.TrimSpace(tech)
		if tech == "" {
			return
		}
		key := text.Fold(tech)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, tech)
	}

	for _, l := range languages {
		add(l)
	}
	if lower == "" {
		return out
	}
	for _, tech := range Vocabulary {
		if strings.Contains(lower, tech) {
			add(tech)
		}
	}
	return out
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
