package cli

import (
	"context"

	"github.com/m-mizutani/iconpack/pkg/cli/config"
	"github.com/m-mizutani/iconpack/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdFetch(out *printer) *cli.Command {
	var fetchCfg config.Fetch

	return &cli.Command{
		Name:      "fetch",
		Usage:     "Download the upstream archive of a pack into its cache/ directory",
		ArgsUsage: "PACK_DIR",
		Flags:     fetchCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			pack, err := packDir(c.Args().First())
			if err != nil {
				return err
			}

			out.Line("Fetching %s...", pack.Name())
			result, err := usecase.NewFetch(fetchCfg.Configure()).Fetch(ctx, pack)
			if err != nil {
				return err
			}

			if !result.Verified {
				out.Warn("No SHA-256 verified for %s, computed: %s", pack.Name(), result.SHA256)
			}
			out.Success("Archive cached at %s", result.Path)
			return nil
		},
	}
}
