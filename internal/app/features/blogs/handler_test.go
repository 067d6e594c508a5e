package blogs_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/dalemusser/folio/internal/app/features/blogs"
	"github.com/dalemusser/folio/internal/app/system/blogfeed"
	"github.com/dalemusser/folio/internal/testutil"
	"go.uber.org/zap"
)

type fakeFeed struct {
	posts []blogfeed.Card
	err   error
}

func (f fakeFeed) Posts(context.Context) ([]blogfeed.Card, error) { return f.posts, f.err }

func TestServeList(t *testing.T) {
	tests := []struct {
		name string
		feed fakeFeed
		want int
		body string
	}{
		{"posts", fakeFeed{posts: []blogfeed.Card{{ID: "1", Title: "Hello", Platform: "Blog"}}}, http.StatusOK, `"title":"Hello"`},
		{"empty", fakeFeed{}, http.StatusOK, `[]`},
		{"upstream down", fakeFeed{err: errors.New("dial tcp: timeout")}, http.StatusInternalServerError, "dial tcp: timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := blogs.Routes(blogs.NewHandler(tt.feed, zap.NewNop()))
			rec := testutil.NewRecorder()
			h.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))
			rec.AssertStatus(t, tt.want)
			rec.AssertContains(t, tt.body)
		})
	}
}
