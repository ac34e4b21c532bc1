package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrInvalidConfig is returned when upstream.toml misses a required field
	ErrInvalidConfig = goerr.New("invalid upstream config")

	// ErrUnknownArchiveType is returned when an archive suffix matches no backend
	ErrUnknownArchiveType = goerr.New("cannot determine archive type")

	// ErrArchiveState is returned on use-after-close or when reading a non-file member
	ErrArchiveState = goerr.New("invalid archive state")

	// ErrChecksumMismatch is returned when a downloaded archive does not match the declared SHA-256
	ErrChecksumMismatch = goerr.New("sha256 mismatch")

	// ErrNoIcons is returned when a build extracts zero entries
	ErrNoIcons = goerr.New("no icons extracted")

	// ErrUnknownBundler is returned when build.module/build.entry name no registered bundler
	ErrUnknownBundler = goerr.New("unknown bundler")

	// ErrCacheMiss is returned when build runs before the upstream archive was fetched
	ErrCacheMiss = goerr.New("upstream archive not cached")

	// ErrNotGitHubSource is returned when a release check targets a non-GitHub source URL
	ErrNotGitHubSource = goerr.New("source is not hosted on GitHub")
)
