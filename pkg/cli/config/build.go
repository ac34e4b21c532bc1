package config

import (
	"github.com/m-mizutani/iconpack/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Build holds build output configuration
type Build struct {
	OutputDir string
}

// Flags returns CLI flags for build configuration
func (c *Build) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output-dir",
			Usage:       "Directory for icons.zip and pack_manifest.json (default: the pack's src/justmyresource_* directory)",
			Destination: &c.OutputDir,
			Sources:     cli.EnvVars("ICONPACK_OUTPUT_DIR"),
		},
	}
}

// Options returns build use case options
func (c *Build) Options() []usecase.BuildOption {
	if c.OutputDir == "" {
		return nil
	}
	return []usecase.BuildOption{usecase.WithOutputDir(c.OutputDir)}
}
