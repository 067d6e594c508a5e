package leetcode_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalemusser/folio/internal/app/system/leetcode"
)

const sampleResponse = `{
  "data": {
    "allQuestionsCount": [
      {"difficulty": "All", "count": 3000},
      {"difficulty": "Easy", "count": 800},
      {"difficulty": "Medium", "count": 1600},
      {"difficulty": "Hard", "count": 600}
    ],
    "matchedUser": {
      "contributions": {"points": 120},
      "profile": {"reputation": 7, "ranking": 250000},
      "submissionCalendar": "{\"1704067200\": 3, \"1704153600\": 1}",
      "submitStats": {
        "acSubmissionNum": [
          {"difficulty": "All", "count": 300, "submissions": 410},
          {"difficulty": "Easy", "count": 150, "submissions": 180},
          {"difficulty": "Medium", "count": 120, "submissions": 190},
          {"difficulty": "Hard", "count": 30, "submissions": 40}
        ],
        "totalSubmissionNum": [
          {"difficulty": "All", "count": 320, "submissions": 600},
          {"difficulty": "Easy", "count": 155, "submissions": 230},
          {"difficulty": "Medium", "count": 130, "submissions": 300},
          {"difficulty": "Hard", "count": 35, "submissions": 70}
        ]
      }
    }
  }
}`

func TestParse(t *testing.T) {
	s, err := leetcode.Parse([]byte(sampleResponse))
	require.NoError(t, err)

	assert.Equal(t, "success", s.Status)
	assert.EqualValues(t, 300, s.TotalSolved)
	assert.EqualValues(t, 3000, s.TotalQuestions)
	assert.EqualValues(t, 150, s.EasySolved)
	assert.EqualValues(t, 1600, s.TotalMedium)
	assert.EqualValues(t, 30, s.HardSolved)
	assert.EqualValues(t, 250000, s.Ranking)
	assert.EqualValues(t, 120, s.ContributionPoints)
	assert.EqualValues(t, 7, s.Reputation)
	assert.Equal(t, 68.33, s.AcceptanceRate)
	assert.Equal(t, map[string]int64{"1704067200": 3, "1704153600": 1}, s.SubmissionCalendar)
}

func TestParse_UnknownUser(t *testing.T) {
	_, err := leetcode.Parse([]byte(`{"errors":[{"message":"That user does not exist."}],"data":{"matchedUser":null}}`))
	assert.ErrorIs(t, err, leetcode.ErrUserNotFound)

	_, err = leetcode.Parse([]byte(`{"data":{"matchedUser":null}}`))
	assert.ErrorIs(t, err, leetcode.ErrUserNotFound)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := leetcode.Parse([]byte("<html>"))
	assert.Error(t, err)
}

func TestAcceptanceRate(t *testing.T) {
	assert.Equal(t, 0.0, leetcode.AcceptanceRate(10, 0))
	assert.Equal(t, 50.0, leetcode.AcceptanceRate(1, 2))
	assert.Equal(t, 33.33, leetcode.AcceptanceRate(1, 3))
}

func TestClientStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Variables map[string]string `json:"variables"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "alice", body.Variables["username"])
		assert.Equal(t, "https://leetcode.com/alice/", r.Header.Get("Referer"))
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	s, err := leetcode.New(srv.URL, time.Second).Stats(context.Background(), "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 300, s.TotalSolved)
}

func TestClientStats_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := leetcode.New(srv.URL, time.Second).Stats(context.Background(), "alice")
	require.Error(t, err)
	assert.False(t, errors.Is(err, leetcode.ErrUserNotFound))
	assert.Contains(t, err.Error(), "Service Unavailable")
}

func TestErrorStats(t *testing.T) {
	s := leetcode.ErrorStats("boom")
	assert.Equal(t, "error", s.Status)
	assert.Equal(t, "boom", s.Message)
	assert.NotNil(t, s.SubmissionCalendar)
	assert.Zero(t, s.TotalSolved)
}
