package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/iconpack/pkg/cli/config"
	"github.com/m-mizutani/iconpack/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Option is a functional option for Run
type Option func(*runOptions)

type runOptions struct {
	stdout io.Writer
	stderr io.Writer
}

// WithStdout redirects command results
func WithStdout(w io.Writer) Option {
	return func(o *runOptions) {
		o.stdout = w
	}
}

// WithStderr redirects log output
func WithStderr(w io.Writer) Option {
	return func(o *runOptions) {
		o.stderr = w
	}
}

// Run runs the CLI application
func Run(ctx context.Context, args []string, opts ...Option) error {
	o := runOptions{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(&o)
	}

	loggerCfg := config.Logger{Output: o.stderr}
	var logger *slog.Logger
	out := newPrinter(o.stdout)

	app := &cli.Command{
		Name:      "iconpack",
		Usage:     "Build icon packs from upstream icon library releases",
		Version:   types.Version,
		Flags:     loggerCfg.Flags(),
		Writer:    o.stdout,
		ErrWriter: o.stderr,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			logger = logger.With("run_id", uuid.NewString())
			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdFetch(out),
			cmdBuild(out),
			cmdReadme(out),
			cmdOutdated(out),
			cmdBundlers(out),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.New(slog.NewTextHandler(o.stderr, nil))
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
