package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconpack/pkg/cli/config"
	"github.com/m-mizutani/iconpack/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdOutdated(out *printer) *cli.Command {
	var githubCfg config.GitHub

	return &cli.Command{
		Name:      "outdated",
		Usage:     "Compare each pack's source.tag with the latest upstream GitHub release",
		ArgsUsage: "PACK_DIR...",
		Flags:     githubCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if c.Args().Len() == 0 {
				return goerr.New("at least one PACK_DIR is required")
			}

			client, err := githubCfg.Configure()
			if err != nil {
				return err
			}
			logger.Debug("GitHub client configured", "github", githubCfg)

			uc := usecase.NewRelease(client)
			for _, arg := range c.Args().Slice() {
				pack, err := packDir(arg)
				if err != nil {
					return err
				}

				check, err := uc.CheckRelease(ctx, pack)
				if err != nil {
					return err
				}

				if check.UpToDate {
					out.Success("%s is up to date (%s)", check.Pack, check.CurrentTag)
				} else {
					out.Warn("%s: %s -> %s", check.Pack, check.CurrentTag, check.LatestTag)
					out.Detail("%s", check.URL)
				}
			}
			return nil
		},
	}
}
