package config

import (
	"github.com/m-mizutani/iconpack/pkg/domain/interfaces"
	githubinfra "github.com/m-mizutani/iconpack/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub API configuration
type GitHub struct {
	Token  string `masq:"secret"`
	APIURL string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token for API requests (optional, raises rate limits)",
			Destination: &c.Token,
			Sources:     cli.EnvVars("ICONPACK_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL",
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("ICONPACK_GITHUB_API_URL"),
		},
	}
}

// Configure creates a release client from the configuration
func (c *GitHub) Configure() (interfaces.ReleaseClient, error) {
	var opts []githubinfra.Option
	if c.Token != "" {
		opts = append(opts, githubinfra.WithToken(c.Token))
	}
	if c.APIURL != "" {
		opts = append(opts, githubinfra.WithBaseURL(c.APIURL))
	}
	return githubinfra.NewClient(opts...)
}
