package model

import (
	"strings"
	"time"
)

// ReleaseInfo represents the latest release of an upstream repository
type ReleaseInfo struct {
	Owner       string    // Repository owner
	Repo        string    // Repository name
	TagName     string    // Release tag name
	ReleaseName string    // Release name
	URL         string    // Release page URL
	PublishedAt time.Time // Zero if the release was never published
}

// ReleaseCheck compares the tag pinned in upstream.toml with the upstream's latest release
type ReleaseCheck struct {
	Pack       string
	CurrentTag string
	LatestTag  string
	UpToDate   bool
	URL        string
}

const githubHost = "github.com/"

// ParseGitHubRepo finds "github.com/" in rawURL and returns the next two path
// segments as owner and repo. ok is false when either segment is missing.
func ParseGitHubRepo(rawURL string) (owner, repo string, ok bool) {
	idx := strings.Index(rawURL, githubHost)
	if idx < 0 {
		return "", "", false
	}

	parts := strings.Split(rawURL[idx+len(githubHost):], "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// GitHubRepoURL returns "https://github.com/{owner}/{repo}" for GitHub-hosted
// sources and an empty string otherwise.
func GitHubRepoURL(rawURL string) string {
	owner, repo, ok := ParseGitHubRepo(rawURL)
	if !ok {
		return ""
	}
	return "https://" + githubHost + owner + "/" + repo
}

// SameTag compares release tags ignoring a leading "v"
func SameTag(a, b string) bool {
	return strings.TrimPrefix(a, "v") == strings.TrimPrefix(b, "v")
}
