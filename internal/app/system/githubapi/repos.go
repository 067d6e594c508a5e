package githubapi

import (
	"context"
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// RepoStars returns the stargazer count of owner/repo.
func (c *Client) RepoStars(ctx context.Context, owner, repo string) (int, error) {
	var body struct {
		Stars int `json:"stargazers_count"`
	}
	if err := c.getJSON(ctx, c.repoURL(owner, repo), &body); err != nil {
		return 0, err
	}
	return body.Stars, nil
}

// Readme is a repository README as returned by the contents API.
type Readme struct {
	Name    string
	Path    string
	Content string
}

// Readme fetches and decodes the default README of owner/repo.
// A repository without one yields an error for which IsNotFound is true.
func (c *Client) Readme(ctx context.Context, owner, repo string) (Readme, error) {
	var body struct {
		Name     string `json:"name"`
		Path     string `json:"path"`
		Content  string `json:"content"`
		Encoding string `json:"encoding"`
	}
	if err := c.getJSON(ctx, c.repoURL(owner, repo)+"/readme", &body); err != nil {
		return Readme{}, err
	}

	content := body.Content
	if body.Encoding == "base64" || body.Encoding == "" {
		raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(body.Content, "\n", ""))
		if err != nil {
			return Readme{}, errors.Wrapf(err, "decode README of %s/%s", owner, repo)
		}
		content = string(raw)
	}
	return Readme{Name: body.Name, Path: body.Path, Content: content}, nil
}

func (c *Client) repoURL(owner, repo string) string {
	return c.apiURL + "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(strings.TrimSuffix(repo, ".git"))
}
