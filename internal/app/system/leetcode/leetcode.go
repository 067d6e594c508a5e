// Package leetcode fetches a user's solve statistics from LeetCode's
// public GraphQL endpoint.
package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// DefaultURL is LeetCode's GraphQL endpoint.
const DefaultURL = "https://leetcode.com/graphql/"

const profileQuery = `query getUserProfile($username: String!) {
  allQuestionsCount { difficulty count }
  matchedUser(username: $username) {
    contributions { points }
    profile { reputation ranking }
    submissionCalendar
    submitStats {
      acSubmissionNum { difficulty count submissions }
      totalSubmissionNum { difficulty count submissions }
    }
  }
}`

// ErrUserNotFound is returned when LeetCode knows no such user.
var ErrUserNotFound = errors.New("User does not exist")

// Stats is the payload of the LeetCode statistics endpoint.
type Stats struct {
	Status             string           `json:"status"`
	Message            string           `json:"message"`
	TotalSolved        int64            `json:"totalSolved"`
	TotalQuestions     int64            `json:"totalQuestions"`
	EasySolved         int64            `json:"easySolved"`
	TotalEasy          int64            `json:"totalEasy"`
	MediumSolved       int64            `json:"mediumSolved"`
	TotalMedium        int64            `json:"totalMedium"`
	HardSolved         int64            `json:"hardSolved"`
	TotalHard          int64            `json:"totalHard"`
	AcceptanceRate     float64          `json:"acceptanceRate"`
	Ranking            int64            `json:"ranking"`
	ContributionPoints int64            `json:"contributionPoints"`
	Reputation         int64            `json:"reputation"`
	SubmissionCalendar map[string]int64 `json:"submissionCalendar"`
}

// ErrorStats is the zeroed body sent alongside a failure.
func ErrorStats(message string) Stats {
	return Stats{Status: "error", Message: message, SubmissionCalendar: map[string]int64{}}
}

// Client queries LeetCode.
type Client struct {
	url  string
	http *http.Client
}

// New returns a Client for endpoint (DefaultURL when empty).
func New(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{url: endpoint, http: &http.Client{Timeout: timeout}}
}

// Stats fetches and summarizes username's profile.
func (c *Client) Stats(ctx context.Context, username string) (Stats, error) {
	payload, err := json.Marshal(map[string]any{
		"query":     profileQuery,
		"variables": map[string]string{"username": username},
	})
	if err != nil {
		return Stats{}, errors.Wrap(err, "marshal leetcode query")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return Stats{}, errors.Wrap(err, "build leetcode request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com/"+username+"/")

	resp, err := c.http.Do(req)
	if err != nil {
		return Stats{}, errors.Wrap(err, "leetcode request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Stats{}, errors.Wrap(err, "read leetcode response")
	}
	if resp.StatusCode != http.StatusOK {
		return Stats{}, errors.Errorf("LeetCode API error: %s", http.StatusText(resp.StatusCode))
	}
	return Parse(body)
}

// Parse summarizes a raw GraphQL response.
func Parse(body []byte) (Stats, error) {
	if !gjson.ValidBytes(body) {
		return Stats{}, errors.New("LeetCode API error: invalid JSON")
	}
	doc := gjson.ParseBytes(body)
	if doc.Get("errors").Exists() || !doc.Get("data.matchedUser").IsObject() {
		return Stats{}, ErrUserNotFound
	}

	user := doc.Get("data.matchedUser")
	questions := doc.Get("data.allQuestionsCount")
	accepted := user.Get("submitStats.acSubmissionNum")
	total := user.Get("submitStats.totalSubmissionNum")

	count := func(list gjson.Result, difficulty, field string) int64 {
		return list.Get(`#(difficulty=="` + difficulty + `").` + field).Int()
	}

	calendar := map[string]int64{}
	gjson.Parse(user.Get("submissionCalendar").String()).ForEach(func(k, v gjson.Result) bool {
		calendar[k.String()] = v.Int()
		return true
	})

	return Stats{
		Status:             "success",
		Message:            "retrieved",
		TotalSolved:        count(accepted, "All", "count"),
		TotalQuestions:     count(questions, "All", "count"),
		EasySolved:         count(accepted, "Easy", "count"),
		TotalEasy:          count(questions, "Easy", "count"),
		MediumSolved:       count(accepted, "Medium", "count"),
		TotalMedium:        count(questions, "Medium", "count"),
		HardSolved:         count(accepted, "Hard", "count"),
		TotalHard:          count(questions, "Hard", "count"),
		AcceptanceRate:     AcceptanceRate(count(accepted, "All", "submissions"), count(total, "All", "submissions")),
		Ranking:            user.Get("profile.ranking").Int(),
		ContributionPoints: user.Get("contributions.points").Int(),
		Reputation:         user.Get("profile.reputation").Int(),
		SubmissionCalendar: calendar,
	}, nil
}

// AcceptanceRate is accepted/total in percent with two decimals; zero when
// there are no submissions.
func AcceptanceRate(accepted, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(accepted)/float64(total)*10000) / 100
}
