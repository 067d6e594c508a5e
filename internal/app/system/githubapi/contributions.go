package githubapi

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// earliestYear is the first year GitHub has contribution data for.
const earliestYear = 2005

const contributionsQuery = `query($login: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $login) {
    createdAt
    contributionsCollection(from: $from, to: $to) {
      contributionYears
      contributionCalendar {
        weeks {
          contributionDays {
            contributionCount
            date
          }
        }
      }
    }
  }
}`

// ContributionDay is one cell of the contribution calendar.
type ContributionDay struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"contributionCount"`
}

// YearContributions is the calendar of one year.
type YearContributions struct {
	CreatedAt string
	Days      []ContributionDay
}

// Contributions maps a year to its calendar. Years whose queries failed twice
// are absent.
type Contributions map[int]YearContributions

type graphQLResponse struct {
	Data *struct {
		User *struct {
			CreatedAt               string `json:"createdAt"`
			ContributionsCollection *struct {
				ContributionCalendar *struct {
					Weeks []struct {
						ContributionDays []ContributionDay `json:"contributionDays"`
					} `json:"weeks"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (r graphQLResponse) err() error {
	if len(r.Errors) > 0 {
		return errors.New(r.Errors[0].Message)
	}
	if r.Data == nil || r.Data.User == nil {
		return errors.New("empty response")
	}
	return nil
}

func (c *Client) queryYear(ctx context.Context, user string, year int) (YearContributions, error) {
	body := map[string]any{
		"query": contributionsQuery,
		"variables": map[string]any{
			"login": user,
			"from":  strconv.Itoa(year) + "-01-01T00:00:00Z",
			"to":    strconv.Itoa(year) + "-12-31T23:59:59Z",
		},
	}

	var resp graphQLResponse
	if err := c.postJSON(ctx, c.graphqlURL, body, &resp); err != nil {
		return YearContributions{}, err
	}
	if err := resp.err(); err != nil {
		return YearContributions{}, err
	}

	u := resp.Data.User
	out := YearContributions{CreatedAt: u.CreatedAt}
	if u.ContributionsCollection != nil && u.ContributionsCollection.ContributionCalendar != nil {
		for _, w := range u.ContributionsCollection.ContributionCalendar.Weeks {
			out.Days = append(out.Days, w.ContributionDays...)
		}
	}
	return out, nil
}

// ContributionYear fetches one year, retrying once after retryDelay.
func (c *Client) ContributionYear(ctx context.Context, user string, year int) (YearContributions, error) {
	yc, err := c.queryYear(ctx, user, year)
	if err == nil {
		return yc, nil
	}
	c.log.Warn("contribution query failed, retrying",
		zap.String("user", user), zap.Int("year", year), zap.Error(err))

	select {
	case <-ctx.Done():
		return YearContributions{}, ctx.Err()
	case <-time.After(c.retryDelay):
	}

	yc, err = c.queryYear(ctx, user, year)
	if err != nil {
		return YearContributions{}, errors.Wrapf(err, "contributions %s %d", user, year)
	}
	return yc, nil
}

// Contributions fetches every year from the account's creation (not before
// 2005) to the current year. The current year is fetched first to learn the
// creation date; the remaining years are fetched in parallel. A year that
// fails twice is logged and skipped.
func (c *Client) Contributions(ctx context.Context, user string) (Contributions, error) {
	current := c.now().UTC().Year()

	first, err := c.ContributionYear(ctx, user, current)
	if err != nil || first.CreatedAt == "" {
		return nil, errors.New("failed to retrieve contributions; this is likely a GitHub API issue")
	}

	start := earliestYear
	if y, err := strconv.Atoi(strings.SplitN(first.CreatedAt, "-", 2)[0]); err == nil && y > start {
		start = y
	}

	out := Contributions{current: first}
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for year := start; year < current; year++ {
		g.Go(func() error {
			yc, err := c.ContributionYear(gctx, user, year)
			if err != nil {
				c.log.Warn("skipping contribution year", zap.String("user", user), zap.Int("year", year), zap.Error(err))
				return nil
			}
			mu.Lock()
			out[year] = yc
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out, nil
}

// days flattens every year into one list sorted by date ascending.
func (cs Contributions) days() []ContributionDay {
	var all []ContributionDay
	for _, yc := range cs {
		all = append(all, yc.Days...)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Date < all[j].Date })
	return all
}

// TotalCommits sums every contribution count.
func (cs Contributions) TotalCommits() int {
	total := 0
	for _, yc := range cs {
		for _, d := range yc.Days {
			total += d.Count
		}
	}
	return total
}

// LongestStreak is the longest run of consecutive calendar days with at
// least one contribution.
func (cs Contributions) LongestStreak() int {
	longest, run := 0, 0
	for _, d := range cs.days() {
		if d.Count > 0 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

// CurrentStreak counts consecutive contribution days backwards from the most
// recent calendar day, skipping empty days before the first contribution.
// It is zero when the newest data is three or more days old.
func (cs Contributions) CurrentStreak(now time.Time) int {
	all := cs.days()
	if len(all) == 0 {
		return 0
	}

	newest, err := time.Parse("2006-01-02", all[len(all)-1].Date)
	if err != nil || now.Sub(newest) >= 3*24*time.Hour {
		return 0
	}

	streak := 0
	var last time.Time
	for i := len(all) - 1; i >= 0; i-- {
		day, err := time.Parse("2006-01-02", all[i].Date)
		if err != nil {
			continue
		}
		gap := 0
		if !last.IsZero() {
			gap = int(last.Sub(day).Hours() / 24)
		}
		if all[i].Count > 0 {
			if !last.IsZero() && gap > 1 {
				break
			}
			streak++
			last = day
		} else if !last.IsZero() && gap > 1 {
			break
		}
	}
	return streak
}
