package githubapi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, h http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c := New(Config{Token: "test-token", APIURL: srv.URL, GraphQLURL: srv.URL + "/graphql"}, zap.NewNop())
	c.retryDelay = 0
	c.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return c, srv
}

type gqlRequest struct {
	Variables struct {
		Login string `json:"login"`
		From  string `json:"from"`
	} `json:"variables"`
}

func yearResponse(createdAt string, days ...ContributionDay) map[string]any {
	return map[string]any{
		"data": map[string]any{
			"user": map[string]any{
				"createdAt": createdAt,
				"contributionsCollection": map[string]any{
					"contributionCalendar": map[string]any{
						"weeks": []any{map[string]any{"contributionDays": days}},
					},
				},
			},
		},
	}
}

func TestContributionYear_RetriesOnce(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization: got %q, want %q", got, "Bearer test-token")
		}
		if atomic.AddInt32(&calls, 1) == 1 {
			_ = json.NewEncoder(w).Encode(map[string]any{"errors": []any{map[string]any{"message": "rate limited"}}})
			return
		}
		_ = json.NewEncoder(w).Encode(yearResponse("2020-01-01T00:00:00Z", ContributionDay{Date: "2024-01-01", Count: 3}))
	}))

	yc, err := c.ContributionYear(context.Background(), "octo", 2024)
	if err != nil {
		t.Fatalf("ContributionYear: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls: got %d, want 2", calls)
	}
	if len(yc.Days) != 1 || yc.Days[0].Count != 3 {
		t.Errorf("days: got %+v", yc.Days)
	}
}

func TestContributionYear_FailsAfterSecondAttempt(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))

	if _, err := c.ContributionYear(context.Background(), "octo", 2024); err == nil {
		t.Fatal("expected error")
	}
	if calls != 2 {
		t.Errorf("calls: got %d, want 2", calls)
	}
}

func TestContributions_FetchesEveryYearSinceCreation(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gqlRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		year, _ := strconv.Atoi(req.Variables.From[:4])
		if req.Variables.Login != "octo" {
			t.Errorf("login: got %q", req.Variables.Login)
		}
		_ = json.NewEncoder(w).Encode(yearResponse("2022-03-04T00:00:00Z",
			ContributionDay{Date: req.Variables.From[:4] + "-05-01", Count: year - 2020}))
	}))

	cs, err := c.Contributions(context.Background(), "octo")
	if err != nil {
		t.Fatalf("Contributions: %v", err)
	}
	if len(cs) != 3 {
		t.Fatalf("years: got %d, want 3 (2022..2024)", len(cs))
	}
	// 2 + 3 + 4
	if got := cs.TotalCommits(); got != 9 {
		t.Errorf("TotalCommits: got %d, want 9", got)
	}
}

func TestContributions_MissingCreatedAtIsError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"user": nil}})
	}))

	if _, err := c.Contributions(context.Background(), "ghost"); err == nil {
		t.Fatal("expected error for unknown user")
	}
}

func TestStreaks(t *testing.T) {
	cs := Contributions{
		2023: {Days: []ContributionDay{
			{Date: "2023-12-30", Count: 1},
			{Date: "2023-12-31", Count: 2},
		}},
		2024: {Days: []ContributionDay{
			{Date: "2024-01-01", Count: 1},
			{Date: "2024-01-02", Count: 0},
			{Date: "2024-01-03", Count: 5},
			{Date: "2024-01-04", Count: 1},
			{Date: "2024-01-05", Count: 0},
		}},
	}

	if got := cs.TotalCommits(); got != 10 {
		t.Errorf("TotalCommits: got %d, want 10", got)
	}
	// 12-30, 12-31, 01-01 spans the year boundary
	if got := cs.LongestStreak(); got != 3 {
		t.Errorf("LongestStreak: got %d, want 3", got)
	}

	now := time.Date(2024, 1, 6, 10, 0, 0, 0, time.UTC)
	if got := cs.CurrentStreak(now); got != 2 {
		t.Errorf("CurrentStreak: got %d, want 2", got)
	}
	stale := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
	if got := cs.CurrentStreak(stale); got != 0 {
		t.Errorf("CurrentStreak(stale): got %d, want 0", got)
	}
	if got := (Contributions{}).LongestStreak(); got != 0 {
		t.Errorf("LongestStreak(empty): got %d, want 0", got)
	}
}

func TestAggregateLanguages(t *testing.T) {
	got := AggregateLanguages([]map[string]int64{
		{"Go": 600, "HTML": 5000},
		{"Python": 300, "Go": 0},
		nil,
		{"Shell": 100},
	}, DefaultExcludedLanguages)

	want := []LanguageShare{{"Go", 60}, {"Python", 30}, {"Shell", 10}}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d]: got %+v, want %+v", i, got[i], want[i])
		}
	}

	thirds := AggregateLanguages([]map[string]int64{{"A": 1, "B": 1, "C": 1}}, nil)
	if thirds[0].Percentage != 33.33 {
		t.Errorf("rounding: got %v, want 33.33", thirds[0].Percentage)
	}
	if len(AggregateLanguages(nil, nil)) != 0 {
		t.Error("expected empty breakdown for no data")
	}
}

func TestLanguageStats(t *testing.T) {
	var srvURL string
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octo/repos", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]string{
			{"name": "a", "languages_url": srvURL + "/repos/octo/a/languages"},
			{"name": "b", "languages_url": srvURL + "/repos/octo/b/languages"},
		})
	})
	mux.HandleFunc("/repos/octo/a/languages", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Go": 750, "CSS": 900}`))
	})
	mux.HandleFunc("/repos/octo/b/languages", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"TypeScript": 250}`))
	})
	c, srv := newTestClient(t, mux)
	srvURL = srv.URL

	got := c.LanguageStats(context.Background(), "octo", DefaultExcludedLanguages)
	if len(got) != 2 || got[0].Name != "Go" || got[0].Percentage != 75 || got[1].Percentage != 25 {
		t.Fatalf("LanguageStats: got %+v", got)
	}
}

func TestUserStats(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(yearResponse("2024-01-15T00:00:00Z",
			ContributionDay{Date: "2024-05-20", Count: 4},
			ContributionDay{Date: "2024-05-21", Count: 1},
			ContributionDay{Date: "2024-05-22", Count: 1},
			ContributionDay{Date: "2024-05-23", Count: 0},
			ContributionDay{Date: "2024-05-30", Count: 1},
			ContributionDay{Date: "2024-05-31", Count: 2},
		))
	})
	mux.HandleFunc("/users/octo/repos", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	c, _ := newTestClient(t, mux)

	s, err := c.UserStats(context.Background(), "octo")
	if err != nil {
		t.Fatalf("UserStats: %v", err)
	}
	if s.TotalCommits != 9 {
		t.Errorf("TotalCommits: got %d, want 9", s.TotalCommits)
	}
	if s.LongestStreak != 3 {
		t.Errorf("LongestStreak: got %d, want 3", s.LongestStreak)
	}
	// now is 2024-06-01; the run ending 05-31 is still live
	if s.CurrentStreak != 2 {
		t.Errorf("CurrentStreak: got %d, want 2", s.CurrentStreak)
	}

	b, _ := json.Marshal(s)
	if !strings.Contains(string(b), `"currentStreak":2`) {
		t.Errorf("payload: %s", b)
	}
}

func TestLanguageStats_UpstreamFailureIsEmpty(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	got := c.LanguageStats(context.Background(), "octo", nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestReadme(t *testing.T) {
	content := "# Hello\n\nWorld ✓\n"
	encoded := base64.StdEncoding.EncodeToString([]byte(content))
	// GitHub wraps base64 at 60 columns
	wrapped := encoded[:10] + "\n" + encoded[10:]

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/octo/hello/readme":
			_ = json.NewEncoder(w).Encode(map[string]string{
				"name": "README.md", "path": "README.md", "content": wrapped, "encoding": "base64",
			})
		default:
			http.NotFound(w, r)
		}
	}))

	rd, err := c.Readme(context.Background(), "octo", "hello.git")
	if err != nil {
		t.Fatalf("Readme: %v", err)
	}
	if rd.Content != content {
		t.Errorf("content: got %q, want %q", rd.Content, content)
	}

	_, err = c.Readme(context.Background(), "octo", "missing")
	if !IsNotFound(err) {
		t.Errorf("missing README: got %v, want a not-found error", err)
	}
}

func TestRepoStars(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/repos/octo/hello") {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"stargazers_count": 42}`))
	}))

	n, err := c.RepoStars(context.Background(), "octo", "hello")
	if err != nil {
		t.Fatalf("RepoStars: %v", err)
	}
	if n != 42 {
		t.Errorf("stars: got %d, want 42", n)
	}
}
