package model

import (
	"net/url"
	"path"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// FetchResult represents the result of fetching an upstream archive into the cache
type FetchResult struct {
	Path     string // Path of the cached archive
	SHA256   string // Hex digest of the cached archive
	Cached   bool   // True if the existing cache file was reused
	Verified bool   // True if the digest was checked against a declared checksum
}

// BuildResult represents the artifacts written by one pack build
type BuildResult struct {
	ArchivePath  string // Upstream archive the icons were read from
	IconsPath    string // Written icons.zip
	ManifestPath string // Written pack_manifest.json
	ReadmePath   string // Written README.md
	IconCount    int
}

// ArchiveFileName derives the cache file name from the final path segment of
// an archive URL, e.g. ".../archive/refs/tags/0.469.0.tar.gz" -> "0.469.0.tar.gz".
func ArchiveFileName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", goerr.Wrap(err, "invalid source url", goerr.V("url", rawURL))
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" || strings.HasSuffix(u.Path, "/") {
		return "", goerr.New("source url has no file name", goerr.V("url", rawURL))
	}
	return name, nil
}
