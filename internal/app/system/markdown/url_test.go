package markdown_test

import (
	"testing"

	"github.com/dalemusser/folio/internal/app/system/markdown"
)

func TestResolveURL(t *testing.T) {
	const base = "https://raw.githubusercontent.com/o/r/main"

	tests := []struct {
		name string
		url  string
		base string
		want string
	}{
		{"dot slash", "./img.png", base, base + "/img.png"},
		{"root relative", "/img.png", base, base + "/img.png"},
		{"bare", "img.png", base, base + "/img.png"},
		{"one parent stripped", "../img.png", base, base + "/img.png"},
		{"only one parent stripped", "../../img.png", base, base + "/../img.png"},
		{"absolute https", "https://x/y.png", base, "https://x/y.png"},
		{"absolute http", "http://x/y.png", base, "http://x/y.png"},
		{"anchor", "#section", base, "#section"},
		{"other scheme", "ftp://host/file", base, "ftp://host/file"},
		{"base trailing slash", "./a.png", base + "/", base + "/a.png"},
		{"empty base", "./img.png", "", "./img.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := markdown.ResolveURL(tt.url, tt.base); got != tt.want {
				t.Errorf("ResolveURL(%q, %q) = %q, want %q", tt.url, tt.base, got, tt.want)
			}
		})
	}
}

func TestGitHubRawBase(t *testing.T) {
	tests := []struct {
		link   string
		branch string
		want   string
	}{
		{"https://github.com/octo/hello", "", "https://raw.githubusercontent.com/octo/hello/main"},
		{"https://github.com/octo/hello.git", "master", "https://raw.githubusercontent.com/octo/hello/master"},
		{"https://www.github.com/octo/hello/", "", "https://raw.githubusercontent.com/octo/hello/main"},
		{"https://github.com/octo/hello/tree/dev", "", "https://raw.githubusercontent.com/octo/hello/main"},
		{"https://gitlab.com/octo/hello", "", ""},
		{"https://github.com/octo", "", ""},
		{"not a url", "", ""},
	}

	for _, tt := range tests {
		if got := markdown.GitHubRawBase(tt.link, tt.branch); got != tt.want {
			t.Errorf("GitHubRawBase(%q, %q) = %q, want %q", tt.link, tt.branch, got, tt.want)
		}
	}
}

func TestParseGitHubRepo(t *testing.T) {
	owner, repo, ok := markdown.ParseGitHubRepo("https://github.com/octo/hello.git")
	if !ok || owner != "octo" || repo != "hello" {
		t.Fatalf("ParseGitHubRepo: got (%q, %q, %v), want (octo, hello, true)", owner, repo, ok)
	}
}
