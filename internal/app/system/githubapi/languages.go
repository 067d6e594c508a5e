package githubapi

import (
	"context"
	"math"
	"net/url"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultExcludedLanguages are markup and notebook languages left out of the
// language breakdown.
var DefaultExcludedLanguages = []string{
	"Jupyter Notebook", "HTML", "CSS", "Markdown", "JSON", "YAML", "XML",
}

// LanguageShare is one language's share of all code bytes, in percent with
// two decimals.
type LanguageShare struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

type repoSummary struct {
	Name         string `json:"name"`
	LanguagesURL string `json:"languages_url"`
}

// LanguageStats aggregates the language bytes of every repository the user
// owns. Any upstream failure yields an empty breakdown, never an error.
func (c *Client) LanguageStats(ctx context.Context, user string, excluded []string) []LanguageShare {
	var repos []repoSummary
	reposURL := c.apiURL + "/users/" + url.PathEscape(user) + "/repos?type=all&per_page=100"
	if err := c.getJSON(ctx, reposURL, &repos); err != nil {
		c.log.Warn("list repositories failed", zap.String("user", user), zap.Error(err))
		return []LanguageShare{}
	}

	perRepo := make([]map[string]int64, len(repos))
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, r := range repos {
		if r.LanguagesURL == "" {
			continue
		}
		g.Go(func() error {
			var langs map[string]int64
			if err := c.getJSON(gctx, r.LanguagesURL, &langs); err != nil {
				return err
			}
			mu.Lock()
			perRepo[i] = langs
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.log.Warn("fetch repository languages failed", zap.String("user", user), zap.Error(err))
		return []LanguageShare{}
	}
	return AggregateLanguages(perRepo, excluded)
}

// AggregateLanguages sums byte counts across repositories, drops excluded
// languages, and returns percentages sorted largest first (ties by name).
func AggregateLanguages(perRepo []map[string]int64, excluded []string) []LanguageShare {
	skip := make(map[string]bool, len(excluded))
	for _, l := range excluded {
		skip[l] = true
	}

	totals := map[string]int64{}
	var all int64
	for _, langs := range perRepo {
		for name, n := range langs {
			if skip[name] {
				continue
			}
			totals[name] += n
			all += n
		}
	}

	out := make([]LanguageShare, 0, len(totals))
	if all == 0 {
		return out
	}
	for name, n := range totals {
		pct := float64(n) / float64(all) * 100
		out = append(out, LanguageShare{Name: name, Percentage: math.Round(pct*100) / 100})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Percentage != out[j].Percentage {
			return out[i].Percentage > out[j].Percentage
		}
		return out[i].Name < out[j].Name
	})
	return out
}
