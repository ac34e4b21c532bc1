package cli

import (
	"context"

	"github.com/m-mizutani/iconpack/pkg/bundler"
	"github.com/urfave/cli/v3"
)

func cmdBundlers(out *printer) *cli.Command {
	return &cli.Command{
		Name:  "bundlers",
		Usage: "List registered upstream bundlers",
		Action: func(ctx context.Context, c *cli.Command) error {
			for _, name := range bundler.Names() {
				out.Line("%s", name)
			}
			return nil
		},
	}
}
