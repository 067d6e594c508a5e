// Package blogfeed reads the external blog's posts feed and maps it to the
// card shape the site renders.
package blogfeed

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Defaults for the feed and post link locations.
const (
	DefaultFeedURL     = "https://blog.tashif.codes/api/posts.json"
	DefaultPostBaseURL = "https://blog.tashif.codes/blog/"
)

// Card is one post as the site shows it.
type Card struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Date     string   `json:"date"`
	Tags     []string `json:"tags"`
	ReadTime string   `json:"readTime,omitempty"`
	Link     string   `json:"link"`
	Platform string   `json:"platform"`
}

// Client fetches the feed.
type Client struct {
	feedURL  string
	postBase string
	http     *http.Client
}

// New returns a Client. Empty arguments take the defaults.
func New(feedURL, postBaseURL string, timeout time.Duration) *Client {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	if postBaseURL == "" {
		postBaseURL = DefaultPostBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		feedURL:  feedURL,
		postBase: strings.TrimRight(postBaseURL, "/") + "/",
		http:     &http.Client{Timeout: timeout},
	}
}

// Posts fetches the feed and maps every post to a Card.
func (c *Client) Posts(ctx context.Context) ([]Card, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build feed request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch posts")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("Failed to fetch posts: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read posts")
	}
	return Map(body, c.postBase)
}

// Map converts a raw feed to cards. The feed may be an array of posts, an
// object with a "posts" array, or an object whose values are posts.
func Map(body []byte, postBase string) ([]Card, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("posts feed is not valid JSON")
	}
	doc := gjson.ParseBytes(body)

	var posts []gjson.Result
	switch {
	case doc.IsArray():
		posts = doc.Array()
	case doc.Get("posts").IsArray():
		posts = doc.Get("posts").Array()
	case doc.IsObject():
		doc.ForEach(func(_, v gjson.Result) bool {
			posts = append(posts, v)
			return true
		})
	}

	cards := make([]Card, 0, len(posts))
	for _, p := range posts {
		if !p.IsObject() {
			continue
		}
		slug := p.Get("slug").String()
		card := Card{
			ID:       slug,
			Title:    p.Get("title").String(),
			Excerpt:  p.Get("excerpt").String(),
			Date:     p.Get("date").String(),
			Tags:     []string{},
			Link:     postBase + slug,
			Platform: p.Get("author").String(),
		}
		for _, t := range p.Get("tags").Array() {
			card.Tags = append(card.Tags, t.String())
		}
		if m := p.Get("readingTimeMinutes").Int(); m > 0 {
			card.ReadTime = strconv.FormatInt(m, 10) + " min read"
		}
		cards = append(cards, card)
	}
	return cards, nil
}
