package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/iconpack/pkg/domain/model"
)

func TestNewManifest(t *testing.T) {
	cfg, err := model.ParseUpstreamConfig([]byte(heroiconsUpstream))
	gt.NoError(t, err)

	builtAt := time.Date(2026, 2, 16, 21, 0, 0, 0, time.FixedZone("JST", 9*60*60))
	m := model.NewManifest(cfg, model.ManifestInput{
		PackName:      "heroicons",
		IconCount:     584,
		ArchiveSHA256: "computed",
		BuiltAt:       builtAt,
	})

	gt.Value(t, m.Pack.Name).Equal("heroicons")
	gt.Value(t, m.Pack.Version).Equal("v2.2.0")
	gt.Value(t, m.Pack.UpstreamTag).Equal("v2.2.0")
	gt.Value(t, m.Pack.UpstreamRepo).Equal("https://github.com/tailwindlabs/heroicons")
	gt.Value(t, m.Pack.UpstreamLicense).Equal("MIT")
	gt.Value(t, m.Pack.BuildTimestamp).Equal("2026-02-16T12:00:00Z")
	gt.Value(t, m.Pack.SHA256Archive).Equal("computed")
	gt.Value(t, m.Pack.Variants).Equal([]string{"24/outline", "24/solid"})
	gt.Value(t, m.Contents.IconCount).Equal(584)
	gt.Value(t, m.Contents.Variants).Equal([]string{"24/outline", "24/solid"})
	gt.Value(t, m.Contents.Format).Equal(model.ManifestFormat)
	gt.Value(t, m.Contents.NamingConvention).Equal(model.ManifestNamingConvention)
	gt.Value(t, m.Style.Description).Equal("Beautiful hand-crafted SVG icons")
}

func TestNewManifest_Fallbacks(t *testing.T) {
	cfg := &model.UpstreamConfig{
		Source: model.SourceConfig{URL: "https://example.com/icons.zip", Tag: "1.0", SHA256: "declared"},
	}

	m := model.NewManifest(cfg, model.ManifestInput{PackName: "x"})
	gt.Value(t, m.Pack.SHA256Archive).Equal("declared")
	gt.Value(t, m.Pack.UpstreamRepo).Equal("")
	gt.Value(t, m.Pack.Prefixes).Equal([]string{})
	gt.Value(t, m.Pack.Variants).Equal([]string{})

	m = model.NewManifest(cfg, model.ManifestInput{PackName: "x", Variants: []string{"filled"}})
	gt.Value(t, m.Contents.Variants).Equal([]string{"filled"})
}

func TestFormatBuildTimestamp(t *testing.T) {
	testCases := map[string]struct {
		input    time.Time
		expected string
	}{
		"whole second": {
			input:    time.Date(2026, 2, 16, 12, 0, 0, 0, time.UTC),
			expected: "2026-02-16T12:00:00Z",
		},
		"microseconds": {
			input:    time.Date(2026, 2, 16, 12, 0, 0, 250000000, time.UTC),
			expected: "2026-02-16T12:00:00.250000Z",
		},
		"nanoseconds are truncated": {
			input:    time.Date(2026, 2, 16, 12, 0, 0, 123456789, time.UTC),
			expected: "2026-02-16T12:00:00.123456Z",
		},
		"sub-microsecond only": {
			input:    time.Date(2026, 2, 16, 12, 0, 0, 999, time.UTC),
			expected: "2026-02-16T12:00:00Z",
		},
		"converted to UTC": {
			input:    time.Date(2026, 2, 16, 7, 0, 0, 0, time.FixedZone("EST", -5*60*60)),
			expected: "2026-02-16T12:00:00Z",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			gt.Value(t, model.FormatBuildTimestamp(tc.input)).Equal(tc.expected)
		})
	}
}
