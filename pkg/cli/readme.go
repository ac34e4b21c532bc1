package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconpack/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdReadme(out *printer) *cli.Command {
	var all bool

	return &cli.Command{
		Name:      "readme",
		Usage:     "Generate README.md for a pack, or for every pack with --all",
		ArgsUsage: "PACK_DIR | --all PACKS_DIR",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "all",
				Usage:       "Treat the argument as a directory of packs",
				Destination: &all,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := usecase.NewReadme()
			if err != nil {
				return goerr.Wrap(err, "failed to create readme use case")
			}

			if all {
				packsDir := c.Args().First()
				if packsDir == "" {
					return goerr.New("PACKS_DIR is required with --all")
				}

				paths, err := uc.GenerateAll(ctx, packsDir)
				for _, path := range paths {
					out.Success("Generated %s", path)
				}
				return err
			}

			pack, err := packDir(c.Args().First())
			if err != nil {
				return err
			}

			path, err := uc.Generate(ctx, pack)
			if err != nil {
				return err
			}
			out.Success("Generated %s", path)
			return nil
		},
	}
}
