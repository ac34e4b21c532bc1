package model

import "strings"

// ReadmeContext holds the values rendered into a pack README
type ReadmeContext struct {
	PackName    string
	PackageName string
	Description string

	Prefixes      []string
	DefaultPrefix string
	Aliases       []string
	HasAliases    bool

	Variants       []string
	DefaultVariant string
	HasVariants    bool

	LicenseSPDX         string
	Copyright           string
	UpstreamLicenseURL  string
	Modifications       string
	AttributionRequired bool
	AttributionText     string
	BrandsNote          string

	SourceURL string
	Tag       string
}

const fallbackPrefix = "pack"

// NewReadmeContext builds the README context of a pack. packName is the
// display name and packageName the distribution package name.
func NewReadmeContext(cfg *UpstreamConfig, packName, packageName string) *ReadmeContext {
	defaultPrefix := fallbackPrefix
	var aliases []string
	if len(cfg.Pack.Prefixes) > 0 {
		defaultPrefix = cfg.Pack.Prefixes[0]
		aliases = cfg.Pack.Prefixes[1:]
	}

	return &ReadmeContext{
		PackName:    packName,
		PackageName: packageName,
		Description: cfg.Pack.Description,

		Prefixes:      cfg.Pack.Prefixes,
		DefaultPrefix: defaultPrefix,
		Aliases:       aliases,
		HasAliases:    len(aliases) > 0,

		Variants:       cfg.Pack.Variants,
		DefaultVariant: cfg.Pack.DefaultVariant,
		HasVariants:    len(cfg.Pack.Variants) > 0,

		LicenseSPDX:         cfg.License.SPDX,
		Copyright:           cfg.License.Copyright,
		UpstreamLicenseURL:  cfg.License.UpstreamLicenseURL,
		Modifications:       strings.TrimSpace(cfg.License.Modifications),
		AttributionRequired: cfg.License.AttributionRequired,
		AttributionText:     strings.TrimSpace(cfg.License.AttributionText),
		BrandsNote:          strings.TrimSpace(cfg.License.BrandsNote),

		SourceURL: cfg.Pack.SourceURL,
		Tag:       cfg.Source.Tag,
	}
}
