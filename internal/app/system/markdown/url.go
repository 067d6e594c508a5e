package markdown

import (
	"net/url"
	"strings"
)

// ResolveURL rewrites a README-relative link against baseURL.
//
// Absolute URLs, anchors and anything carrying a scheme are returned as is,
// as is everything when baseURL is empty. Only one leading "../" is stripped.
func ResolveURL(u, baseURL string) string {
	if baseURL == "" {
		return u
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	if strings.HasPrefix(u, "#") || strings.Contains(u, "://") {
		return u
	}
	base := strings.TrimRight(baseURL, "/")

	switch {
	case strings.HasPrefix(u, "./"):
		return base + "/" + u[2:]
	case strings.HasPrefix(u, "../"):
		return base + "/" + u[3:]
	case strings.HasPrefix(u, "/"):
		return base + u
	default:
		return base + "/" + u
	}
}

// GitHubRawBase derives the raw-content base URL of a repository link such as
// https://github.com/owner/repo(.git). It returns "" for anything that is not
// a github.com repository URL.
func GitHubRawBase(githubLink, branch string) string {
	owner, repo, ok := ParseGitHubRepo(githubLink)
	if !ok {
		return ""
	}
	if branch == "" {
		branch = "main"
	}
	return "https://raw.githubusercontent.com/" + owner + "/" + repo + "/" + branch
}

// ParseGitHubRepo extracts owner and repository name from a github.com URL.
func ParseGitHubRepo(githubLink string) (owner, repo string, ok bool) {
	u, err := url.Parse(strings.TrimSpace(githubLink))
	if err != nil {
		return "", "", false
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	if host != "github.com" {
		return "", "", false
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), true
}
