package interfaces

import (
	"context"

	"github.com/m-mizutani/iconpack/pkg/domain/model"
)

// FetchUseCase downloads a pack's upstream archive into its cache directory
type FetchUseCase interface {
	Fetch(ctx context.Context, pack *model.PackDir) (*model.FetchResult, error)
}

// BuildUseCase turns a cached upstream archive into icons.zip, manifest and README
type BuildUseCase interface {
	Build(ctx context.Context, pack *model.PackDir) (*model.BuildResult, error)
}

// ReadmeUseCase renders pack READMEs
type ReadmeUseCase interface {
	// Generate writes README.md for one pack and returns its path
	Generate(ctx context.Context, pack *model.PackDir) (string, error)

	// GenerateAll writes README.md for every pack under packsDir carrying an upstream.toml
	GenerateAll(ctx context.Context, packsDir string) ([]string, error)
}

// ReleaseUseCase compares pinned upstream tags with the latest releases
type ReleaseUseCase interface {
	CheckRelease(ctx context.Context, pack *model.PackDir) (*model.ReleaseCheck, error)
}
