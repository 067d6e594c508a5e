package githubapi

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Stats is the payload of the GitHub statistics endpoint.
type Stats struct {
	TopLanguages  []LanguageShare `json:"topLanguages"`
	TotalCommits  int             `json:"totalCommits"`
	LongestStreak int             `json:"longestStreak"`
	CurrentStreak int             `json:"currentStreak"`
}

// UserStats fetches contributions and the language breakdown in parallel.
// Only a contribution failure is an error.
func (c *Client) UserStats(ctx context.Context, user string) (Stats, error) {
	var (
		contribs Contributions
		langs    []LanguageShare
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		contribs, err = c.Contributions(gctx, user)
		return err
	})
	g.Go(func() error {
		langs = c.LanguageStats(gctx, user, DefaultExcludedLanguages)
		return nil
	})
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	return Stats{
		TopLanguages:  langs,
		TotalCommits:  contribs.TotalCommits(),
		LongestStreak: contribs.LongestStreak(),
		CurrentStreak: contribs.CurrentStreak(c.now()),
	}, nil
}
