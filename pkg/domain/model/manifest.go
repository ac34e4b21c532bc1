package model

import "time"

const (
	ManifestFormat           = "image/svg+xml"
	ManifestNamingConvention = "kebab-case"
)

// Manifest is the pack_manifest.json document read by the runtime resource pack
type Manifest struct {
	Pack     ManifestPack     `json:"pack"`
	Contents ManifestContents `json:"contents"`
	Style    ManifestStyle    `json:"style"`
}

type ManifestPack struct {
	Name            string   `json:"name"`
	Version         string   `json:"version"`
	UpstreamRepo    string   `json:"upstream_repo"`
	UpstreamTag     string   `json:"upstream_tag"`
	UpstreamLicense string   `json:"upstream_license"`
	BuildTimestamp  string   `json:"build_timestamp"`
	SHA256Archive   string   `json:"sha256_archive"`
	Prefixes        []string `json:"prefixes"`
	Description     string   `json:"description"`
	SourceURL       string   `json:"source_url"`
	Variants        []string `json:"variants"`
	DefaultVariant  string   `json:"default_variant"`
}

type ManifestContents struct {
	IconCount        int      `json:"icon_count"`
	Variants         []string `json:"variants"`
	Format           string   `json:"format"`
	NamingConvention string   `json:"naming_convention"`
}

type ManifestStyle struct {
	Description string `json:"description"`
}

// ManifestInput carries the build results that feed a manifest
type ManifestInput struct {
	PackName  string
	IconCount int
	// Variants overrides cfg.Pack.Variants when non-nil
	Variants []string
	// ArchiveSHA256 is the digest of the archive actually built from; falls
	// back to the declared source.sha256 when empty
	ArchiveSHA256 string
	BuiltAt       time.Time
}

// NewManifest computes the manifest of a pack from its config and build results
func NewManifest(cfg *UpstreamConfig, input ManifestInput) *Manifest {
	variants := input.Variants
	if variants == nil {
		variants = cfg.Pack.Variants
	}
	if variants == nil {
		variants = []string{}
	}

	sha := input.ArchiveSHA256
	if sha == "" {
		sha = cfg.Source.SHA256
	}

	prefixes := cfg.Pack.Prefixes
	if prefixes == nil {
		prefixes = []string{}
	}

	return &Manifest{
		Pack: ManifestPack{
			Name:            input.PackName,
			Version:         cfg.Source.Tag,
			UpstreamRepo:    GitHubRepoURL(cfg.Source.URL),
			UpstreamTag:     cfg.Source.Tag,
			UpstreamLicense: cfg.License.SPDX,
			BuildTimestamp:  FormatBuildTimestamp(input.BuiltAt),
			SHA256Archive:   sha,
			Prefixes:        prefixes,
			Description:     cfg.Pack.Description,
			SourceURL:       cfg.Pack.SourceURL,
			Variants:        variants,
			DefaultVariant:  cfg.Pack.DefaultVariant,
		},
		Contents: ManifestContents{
			IconCount:        input.IconCount,
			Variants:         variants,
			Format:           ManifestFormat,
			NamingConvention: ManifestNamingConvention,
		},
		Style: ManifestStyle{
			Description: cfg.Pack.Description,
		},
	}
}

// FormatBuildTimestamp renders t in UTC as ISO 8601 with a trailing "Z",
// e.g. "2026-02-16T12:00:00Z" or "2026-02-16T12:00:00.250000Z".
// Sub-second precision is microseconds and is omitted when zero.
func FormatBuildTimestamp(t time.Time) string {
	t = t.UTC().Truncate(time.Microsecond)
	if t.Nanosecond() == 0 {
		return t.Format("2006-01-02T15:04:05Z")
	}
	return t.Format("2006-01-02T15:04:05.000000Z")
}
