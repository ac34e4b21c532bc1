package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconpack/pkg/domain/interfaces"
	"github.com/m-mizutani/iconpack/pkg/domain/model"
)

type client struct {
	githubClient *github.Client
}

// Option is a functional option for the GitHub client
type Option func(*clientOptions)

type clientOptions struct {
	httpClient *http.Client
	token      string
	baseURL    string
}

// WithToken authenticates API calls with a personal access token
func WithToken(token string) Option {
	return func(o *clientOptions) {
		o.token = token
	}
}

// WithBaseURL points the client at another API endpoint (GitHub Enterprise, test servers)
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = c
	}
}

// NewClient creates a GitHub REST client used to query releases
func NewClient(opts ...Option) (interfaces.ReleaseClient, error) {
	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}

	githubClient := github.NewClient(o.httpClient)
	if o.token != "" {
		githubClient = githubClient.WithAuthToken(o.token)
	}

	if o.baseURL != "" {
		base := o.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub API URL", goerr.V("url", o.baseURL))
		}
		githubClient.BaseURL = u
	}

	return &client{
		githubClient: githubClient,
	}, nil
}

// LatestRelease returns the latest published release of owner/repo
func (c *client) LatestRelease(ctx context.Context, owner, repo string) (*model.ReleaseInfo, error) {
	release, resp, err := c.githubClient.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		return nil, goerr.Wrap(err, "failed to get latest release",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("status", status),
		)
	}

	return &model.ReleaseInfo{
		Owner:       owner,
		Repo:        repo,
		TagName:     release.GetTagName(),
		ReleaseName: release.GetName(),
		URL:         release.GetHTMLURL(),
		PublishedAt: release.GetPublishedAt().Time,
	}, nil
}
