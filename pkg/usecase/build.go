package usecase

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconpack/pkg/bundler"
	"github.com/m-mizutani/iconpack/pkg/domain/interfaces"
	"github.com/m-mizutani/iconpack/pkg/domain/model"
	"github.com/m-mizutani/iconpack/pkg/domain/types"
	"github.com/m-mizutani/iconpack/pkg/infra/archive"
	"github.com/m-mizutani/iconpack/pkg/infra/fetch"
	"github.com/m-mizutani/iconpack/pkg/infra/iconzip"
)

type buildUseCase struct {
	readme    interfaces.ReadmeUseCase
	outputDir string
	now       func() time.Time
}

// BuildOption configures the build use case
type BuildOption func(*buildUseCase)

// WithOutputDir writes icons.zip and the manifest into dir instead of the
// pack's src/justmyresource_* directory
func WithOutputDir(dir string) BuildOption {
	return func(uc *buildUseCase) {
		uc.outputDir = dir
	}
}

// WithClock replaces the clock used for the manifest build timestamp
func WithClock(now func() time.Time) BuildOption {
	return func(uc *buildUseCase) {
		uc.now = now
	}
}

// NewBuild creates a new instance of BuildUseCase
func NewBuild(readme interfaces.ReadmeUseCase, opts ...BuildOption) interfaces.BuildUseCase {
	uc := &buildUseCase{
		readme: readme,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Build extracts icons from the cached upstream archive into icons.zip, then
// writes pack_manifest.json and README.md
func (uc *buildUseCase) Build(ctx context.Context, pack *model.PackDir) (*model.BuildResult, error) {
	logger := ctxlog.From(ctx)

	cfg, err := loadPackConfig(pack)
	if err != nil {
		return nil, err
	}

	archivePath, err := fetch.CachePath(pack.CacheDir(), cfg.Source.URL)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(archivePath); err != nil {
		return nil, goerr.Wrap(types.ErrCacheMiss, "no cached archive, run fetch first",
			goerr.V("pack", pack.Name()),
			goerr.V("path", archivePath),
		)
	}

	outputDir := uc.outputDir
	if outputDir == "" {
		outputDir, err = pack.OutputDir()
		if err != nil {
			return nil, err
		}
	}

	extract, err := bundler.Resolve(cfg.Build, pack.Name())
	if err != nil {
		return nil, err
	}

	logger.Info("Processing archive",
		"pack", pack.Name(),
		"archive", filepath.Base(archivePath),
		"output_dir", outputDir,
	)

	iconsPath := filepath.Join(outputDir, model.IconsFileName)
	count, err := uc.repack(extract, cfg, archivePath, iconsPath)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, goerr.Wrap(types.ErrNoIcons, "no icons extracted from archive",
			goerr.V("pack", pack.Name()),
			goerr.V("archive", archivePath),
			goerr.V("module", cfg.Build.Module),
		)
	}
	logger.Info("Created icons.zip", "path", iconsPath, "icon_count", count)

	sha, err := fetch.ComputeSHA256(archivePath)
	if err != nil {
		return nil, err
	}

	manifestPath := filepath.Join(outputDir, model.ManifestFileName)
	manifest := model.NewManifest(cfg, model.ManifestInput{
		PackName:      pack.Name(),
		IconCount:     count,
		ArchiveSHA256: sha,
		BuiltAt:       uc.now(),
	})
	if err := writeManifest(manifest, manifestPath); err != nil {
		return nil, err
	}
	logger.Info("Generated manifest", "path", manifestPath)

	readmePath, err := uc.readme.Generate(ctx, pack)
	if err != nil {
		return nil, err
	}
	logger.Info("Generated readme", "path", readmePath)

	return &model.BuildResult{
		ArchivePath:  archivePath,
		IconsPath:    iconsPath,
		ManifestPath: manifestPath,
		ReadmePath:   readmePath,
		IconCount:    count,
	}, nil
}

// repack streams the bundler output into icons.zip and closes the archive
// before returning
func (uc *buildUseCase) repack(extract interfaces.Bundler, cfg *model.UpstreamConfig, archivePath, iconsPath string) (int, error) {
	ar, err := archive.Open(archivePath)
	if err != nil {
		return 0, err
	}

	count, err := iconzip.Write(extract(ar, cfg), iconsPath, iconzip.WithSkipEmpty())
	if closeErr := ar.Close(); closeErr != nil && err == nil {
		err = goerr.Wrap(closeErr, "failed to close archive", goerr.V("path", archivePath))
	}
	if err != nil {
		return 0, goerr.Wrap(err, "failed to build icons.zip", goerr.V("path", iconsPath))
	}
	return count, nil
}

func writeManifest(manifest *model.Manifest, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return goerr.Wrap(err, "failed to create manifest directory", goerr.V("path", path))
	}

	f, err := os.Create(path)
	if err != nil {
		return goerr.Wrap(err, "failed to create manifest", goerr.V("path", path))
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(manifest); err != nil {
		_ = f.Close()
		return goerr.Wrap(err, "failed to encode manifest", goerr.V("path", path))
	}

	if err := f.Close(); err != nil {
		return goerr.Wrap(err, "failed to write manifest", goerr.V("path", path))
	}
	return nil
}
