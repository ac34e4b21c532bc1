package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconpack/pkg/cli/config"
	"github.com/m-mizutani/iconpack/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdBuild(out *printer) *cli.Command {
	var buildCfg config.Build

	return &cli.Command{
		Name:      "build",
		Usage:     "Extract icons from the cached archive and write icons.zip, pack_manifest.json and README.md",
		ArgsUsage: "PACK_DIR",
		Flags:     buildCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			pack, err := packDir(c.Args().First())
			if err != nil {
				return err
			}

			readmeUC, err := usecase.NewReadme()
			if err != nil {
				return goerr.Wrap(err, "failed to create readme use case")
			}

			result, err := usecase.NewBuild(readmeUC, buildCfg.Options()...).Build(ctx, pack)
			if err != nil {
				return goerr.Wrap(err, "failed to build pack", goerr.V("pack", pack.Name()))
			}

			out.Success("Created %s with %d icons", result.IconsPath, result.IconCount)
			out.Success("Generated %s", result.ManifestPath)
			out.Success("Generated %s", result.ReadmePath)
			return nil
		},
	}
}
