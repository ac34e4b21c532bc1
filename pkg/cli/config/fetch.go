package config

import (
	"net/http"
	"time"

	"github.com/m-mizutani/iconpack/pkg/infra/fetch"
	"github.com/urfave/cli/v3"
)

// Fetch holds download configuration
type Fetch struct {
	Timeout time.Duration
}

// Flags returns CLI flags for download configuration
func (c *Fetch) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Timeout of the whole archive download",
			Value:       10 * time.Minute,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("ICONPACK_FETCH_TIMEOUT"),
		},
	}
}

// Configure creates a download client
func (c *Fetch) Configure() *fetch.Client {
	return fetch.New(fetch.WithHTTPClient(&http.Client{Timeout: c.Timeout}))
}
