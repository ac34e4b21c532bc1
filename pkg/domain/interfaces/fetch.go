package interfaces

import (
	"context"

	"github.com/m-mizutani/iconpack/pkg/domain/model"
)

// Fetcher downloads upstream archives into a local cache
type Fetcher interface {
	// Fetch returns the cached archive for rawURL under cacheDir, downloading it
	// when missing or when its digest differs from expectedSHA256
	Fetch(ctx context.Context, rawURL, cacheDir, expectedSHA256 string) (*model.FetchResult, error)
}
