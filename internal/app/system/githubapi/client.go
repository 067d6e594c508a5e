// Package githubapi is a small GitHub REST and GraphQL client for the
// statistics proxies and the README service.
package githubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	DefaultAPIURL     = "https://api.github.com"
	DefaultGraphQLURL = "https://api.github.com/graphql"
)

// Config configures a Client. An empty Token gives unauthenticated access
// with GitHub's low rate limit; GraphQL requires a token.
type Config struct {
	Token      string
	APIURL     string
	GraphQLURL string
	Timeout    time.Duration
}

// Client talks to GitHub. It is safe for concurrent use.
type Client struct {
	http       *http.Client
	apiURL     string
	graphqlURL string
	log        *zap.Logger

	// retryDelay is the pause before the single retry of a contribution query.
	retryDelay time.Duration
	now        func() time.Time
}

// New builds a Client. With a token, requests carry it through an oauth2
// static token source.
func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.GraphQLURL == "" {
		cfg.GraphQLURL = DefaultGraphQLURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	hc := &http.Client{Timeout: cfg.Timeout}
	if cfg.Token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, hc)
		hc = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}))
		hc.Timeout = cfg.Timeout
	}

	return &Client{
		http:       hc,
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		graphqlURL: cfg.GraphQLURL,
		log:        logger,
		retryDelay: time.Second,
		now:        time.Now,
	}
}

// StatusError is a non-2xx answer from GitHub.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("github: %s returned %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// IsNotFound reports whether err is a GitHub 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	return c.do(req, v)
}

func (c *Client) postJSON(ctx context.Context, url string, body, v any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "marshal request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, v)
}

func (c *Client) do(req *http.Request, v any) error {
	req.Header.Set("User-Agent", "folio")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "github request %s", req.URL.Path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Code: resp.StatusCode, URL: req.URL.String()}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return errors.Wrapf(err, "decode github response %s", req.URL.Path)
	}
	return nil
}
