package classifier

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"

	"github.com/dalemusser/folio/internal/domain/models"
)

// Record is one repository as returned by the stats service
// (GET {stats_service_url}/{user}/repos).
type Record struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	LiveURL     string   `json:"live_website_url"`
	Languages   []string `json:"languages"`
	Commits     int      `json:"num_commits"`
	Readme      string   `json:"readme"`
	Status      string   `json:"status"`
}

// ReadmeText returns the README as text. The stats service sends it either
// base64-encoded or plain; anything that decodes to valid UTF-8 is treated as
// encoded.
func (r Record) ReadmeText() string {
	if r.Readme == "" {
		return ""
	}
	compact := strings.NewReplacer("\n", "", "\r", "").Replace(r.Readme)
	if b, err := base64.StdEncoding.DecodeString(compact); err == nil && utf8.Valid(b) {
		return string(b)
	}
	return r.Readme
}

// Classify converts up to limit records into projects. Records that already
// carry a description or a valid status keep them. Positions start at 1 in
// record order. A limit <= 0 keeps every record.
func Classify(records []Record, username string, limit int) []models.Project {
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	out := make([]models.Project, 0, len(records))
	for i, rec := range records {
		title := strings.TrimSpace(rec.Title)
		if title == "" {
			title = "Unknown Project"
		}
		readme := rec.ReadmeText()

		desc := strings.TrimSpace(rec.Description)
		if desc == "" {
			desc = Describe(title, rec.Languages, readme)
		}

		status := rec.Status
		if !validStatus(status) {
			status = Status(rec.LiveURL, rec.Commits, readme)
		}

		out = append(out, models.Project{
			Position:     i + 1,
			Title:        title,
			Description:  desc,
			Technologies: TechStack(rec.Languages, readme),
			Status:       status,
			GithubLink:   "https://github.com/" + username + "/" + title,
			LiveLink:     strings.TrimSpace(rec.LiveURL),
		})
	}
	return out
}

func validStatus(s string) bool {
	for _, v := range models.ProjectStatuses {
		if s == v {
			return true
		}
	}
	return false
}
