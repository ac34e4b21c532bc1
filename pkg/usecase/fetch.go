package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconpack/pkg/domain/interfaces"
	"github.com/m-mizutani/iconpack/pkg/domain/model"
)

type fetchUseCase struct {
	fetcher interfaces.Fetcher
}

// NewFetch creates a new instance of FetchUseCase
func NewFetch(fetcher interfaces.Fetcher) interfaces.FetchUseCase {
	return &fetchUseCase{
		fetcher: fetcher,
	}
}

// Fetch downloads the upstream archive declared in the pack's upstream.toml into its cache directory
func (uc *fetchUseCase) Fetch(ctx context.Context, pack *model.PackDir) (*model.FetchResult, error) {
	logger := ctxlog.From(ctx)

	cfg, err := loadPackConfig(pack)
	if err != nil {
		return nil, err
	}

	logger.Info("Fetching pack",
		"pack", pack.Name(),
		"url", cfg.Source.URL,
		"tag", cfg.Source.Tag,
	)

	result, err := uc.fetcher.Fetch(ctx, cfg.Source.URL, pack.CacheDir(), cfg.Source.SHA256)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch upstream archive", goerr.V("pack", pack.Name()))
	}

	logger.Info("Archive cached",
		"path", result.Path,
		"cached", result.Cached,
		"verified", result.Verified,
	)

	return result, nil
}

// loadPackConfig reads upstream.toml of pack
func loadPackConfig(pack *model.PackDir) (*model.UpstreamConfig, error) {
	if !pack.HasUpstream() {
		return nil, goerr.New("upstream.toml not found", goerr.V("pack", pack.Root))
	}
	return model.LoadUpstreamConfig(pack.UpstreamPath())
}
