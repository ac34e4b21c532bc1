// Package fetch downloads upstream archives into a per-pack cache directory
// and verifies them against declared SHA-256 digests.
package fetch

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconpack/pkg/domain/interfaces"
	"github.com/m-mizutani/iconpack/pkg/domain/model"
	"github.com/m-mizutani/iconpack/pkg/domain/types"
)

const defaultChunkSize = 8192

// Client downloads archives over HTTP(S)
type Client struct {
	httpClient *http.Client
	chunkSize  int
}

var _ interfaces.Fetcher = (*Client)(nil)

// Option is a functional option for Client configuration
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for downloads
func WithHTTPClient(c *http.Client) Option {
	return func(x *Client) {
		x.httpClient = c
	}
}

// WithChunkSize sets the copy buffer size used while streaming downloads
func WithChunkSize(size int) Option {
	return func(x *Client) {
		if size > 0 {
			x.chunkSize = size
		}
	}
}

// New creates a download client
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		chunkSize:  defaultChunkSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CachePath returns the cache location of rawURL: cacheDir/<url basename>
func CachePath(cacheDir, rawURL string) (string, error) {
	name, err := model.ArchiveFileName(rawURL)
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, name), nil
}

// Fetch returns the cached archive of rawURL, downloading it when absent.
// With an expected digest a cached file is verified and re-downloaded once on
// mismatch; a mismatch after download is an error and the file is kept for
// inspection. Without an expected digest a cached file is reused as is.
func (x *Client) Fetch(ctx context.Context, rawURL, cacheDir, expectedSHA256 string) (*model.FetchResult, error) {
	logger := ctxlog.From(ctx)

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create cache directory", goerr.V("cache_dir", cacheDir))
	}

	cachePath, err := CachePath(cacheDir, rawURL)
	if err != nil {
		return nil, err
	}
	fileName := filepath.Base(cachePath)

	if _, err := os.Stat(cachePath); err == nil {
		if expectedSHA256 == "" {
			logger.Info("Using cached archive (no SHA-256 check)", "file", fileName)
			sha, err := ComputeSHA256(cachePath)
			if err != nil {
				return nil, err
			}
			return &model.FetchResult{Path: cachePath, SHA256: sha, Cached: true}, nil
		}

		ok, sha, err := VerifySHA256(cachePath, expectedSHA256)
		if err != nil {
			return nil, err
		}
		if ok {
			logger.Info("Using cached archive (SHA-256 verified)", "file", fileName)
			return &model.FetchResult{Path: cachePath, SHA256: sha, Cached: true, Verified: true}, nil
		}
		logger.Warn("Cached archive SHA-256 mismatch, re-downloading",
			"file", fileName,
			"expected", expectedSHA256,
			"computed", sha,
		)
	} else if !os.IsNotExist(err) {
		return nil, goerr.Wrap(err, "failed to stat cached archive", goerr.V("path", cachePath))
	}

	logger.Info("Downloading archive", "url", rawURL, "file", fileName)
	if err := x.Download(ctx, rawURL, cachePath); err != nil {
		return nil, err
	}

	if expectedSHA256 == "" {
		sha, err := ComputeSHA256(cachePath)
		if err != nil {
			return nil, err
		}
		logger.Warn("No SHA-256 in upstream.toml", "file", fileName, "computed", sha)
		return &model.FetchResult{Path: cachePath, SHA256: sha}, nil
	}

	ok, sha, err := VerifySHA256(cachePath, expectedSHA256)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, goerr.Wrap(types.ErrChecksumMismatch, "downloaded archive does not match sha256",
			goerr.V("path", cachePath),
			goerr.V("expected", expectedSHA256),
			goerr.V("computed", sha),
		)
	}

	logger.Info("SHA-256 verified", "file", fileName)
	return &model.FetchResult{Path: cachePath, SHA256: sha, Verified: true}, nil
}

// Download streams rawURL to dest. The body goes to a temporary file next to
// dest which replaces dest only after the transfer completed.
func (x *Client) Download(ctx context.Context, rawURL, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return goerr.Wrap(err, "failed to create destination directory", goerr.V("dest", dest))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create download request", goerr.V("url", rawURL))
	}

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to download archive", goerr.V("url", rawURL))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return goerr.New("unexpected status code",
			goerr.V("url", rawURL),
			goerr.V("status", resp.StatusCode),
		)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".part-*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary file", goerr.V("dest", dest))
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	buf := make([]byte, x.chunkSize)
	if _, err := io.CopyBuffer(tmp, resp.Body, buf); err != nil {
		return goerr.Wrap(err, "failed to read response body", goerr.V("url", rawURL))
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to flush temporary file", goerr.V("path", tmpPath))
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return goerr.Wrap(err, "failed to move download into place", goerr.V("dest", dest))
	}
	committed = true

	return nil
}
