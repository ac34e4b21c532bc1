package model

import (
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconpack/pkg/domain/types"
	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultBuildModule is the build.module value used when upstream.toml omits it
	DefaultBuildModule = "pack"
	// DefaultBuildEntry is the build.entry value used when upstream.toml omits it
	DefaultBuildEntry = "extract"
)

// SourceConfig is the [source] section of upstream.toml
type SourceConfig struct {
	URL    string `toml:"url"`
	Tag    string `toml:"tag"`
	SHA256 string `toml:"sha256"`
}

// LicenseConfig is the [license] section of upstream.toml
type LicenseConfig struct {
	SPDX                string `toml:"spdx"`
	Copyright           string `toml:"copyright"`
	UpstreamLicenseURL  string `toml:"upstream_license_url"`
	Modifications       string `toml:"modifications"`
	AttributionRequired bool   `toml:"attribution_required"`
	AttributionText     string `toml:"attribution_text"`
	BrandsNote          string `toml:"brands_note"`
}

// PackConfig is the [pack] section of upstream.toml
type PackConfig struct {
	Prefixes       []string `toml:"prefixes"`
	Description    string   `toml:"description"`
	SourceURL      string   `toml:"source_url"`
	Variants       []string `toml:"variants"`
	DefaultVariant string   `toml:"default_variant"`
}

// BuildConfig is the [build] section of upstream.toml
type BuildConfig struct {
	Module string `toml:"module"`
	Entry  string `toml:"entry"`
}

// UpstreamConfig is the parsed and validated upstream.toml of one pack
type UpstreamConfig struct {
	Source  SourceConfig  `toml:"source"`
	License LicenseConfig `toml:"license"`
	Pack    PackConfig    `toml:"pack"`
	Build   BuildConfig   `toml:"build"`
}

// HasVariant reports whether variant is in the pack's allow-list
func (x *UpstreamConfig) HasVariant(variant string) bool {
	for _, v := range x.Pack.Variants {
		if v == variant {
			return true
		}
	}
	return false
}

// LoadUpstreamConfig reads and validates upstream.toml at path
func LoadUpstreamConfig(path string) (*UpstreamConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read upstream config", goerr.V("path", path))
	}

	cfg, err := ParseUpstreamConfig(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load upstream config", goerr.V("path", path))
	}
	return cfg, nil
}

// ParseUpstreamConfig decodes upstream.toml content. No config is returned
// unless every required field is present.
func ParseUpstreamConfig(data []byte) (*UpstreamConfig, error) {
	cfg := UpstreamConfig{
		Build: BuildConfig{
			Module: DefaultBuildModule,
			Entry:  DefaultBuildEntry,
		},
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse upstream config")
	}
	cfg.Source.SHA256 = strings.TrimSpace(cfg.Source.SHA256)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the required fields of every section
func (x *UpstreamConfig) Validate() error {
	if x.Source.URL == "" || x.Source.Tag == "" {
		return goerr.Wrap(types.ErrInvalidConfig, "missing required fields in [source]: url, tag")
	}
	if x.License.SPDX == "" || x.License.Copyright == "" {
		return goerr.Wrap(types.ErrInvalidConfig, "missing required fields in [license]: spdx, copyright")
	}
	if len(x.Pack.Prefixes) == 0 || x.Pack.Description == "" || x.Pack.SourceURL == "" {
		return goerr.Wrap(types.ErrInvalidConfig, "missing required fields in [pack]: prefixes, description, source_url")
	}
	return nil
}
