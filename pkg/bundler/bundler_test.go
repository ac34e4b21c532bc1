package bundler_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/iconpack/pkg/bundler"
	"github.com/m-mizutani/iconpack/pkg/domain/interfaces"
	"github.com/m-mizutani/iconpack/pkg/domain/model"
	"github.com/m-mizutani/iconpack/pkg/domain/types"
)

// memArchive is an in-memory archive. A name ending in "/" is a directory.
type memArchive struct {
	names    []string
	files    map[string]string
	openErr  error
	listErr  error
	openings int
}

func newMemArchive(names ...string) *memArchive {
	a := &memArchive{files: map[string]string{}}
	for _, name := range names {
		a.names = append(a.names, name)
		a.files[name] = "<svg>" + name + "</svg>"
	}
	return a
}

func (x *memArchive) Members() ([]model.ArchiveMember, error) {
	if x.listErr != nil {
		return nil, x.listErr
	}
	members := make([]model.ArchiveMember, 0, len(x.names))
	for i, name := range x.names {
		kind := model.MemberFile
		if name[len(name)-1] == '/' {
			kind = model.MemberDir
		}
		members = append(members, model.ArchiveMember{Name: name, Kind: kind, Index: i})
	}
	return members, nil
}

func (x *memArchive) Open(member model.ArchiveMember) (io.ReadCloser, error) {
	x.openings++
	if x.openErr != nil {
		return nil, x.openErr
	}
	return io.NopCloser(bytes.NewReader([]byte(x.files[member.Name]))), nil
}

func (x *memArchive) Close() error { return nil }

var _ interfaces.Archive = (*memArchive)(nil)

func configWithVariants(variants ...string) *model.UpstreamConfig {
	return &model.UpstreamConfig{Pack: model.PackConfig{Variants: variants}}
}

func collect(t *testing.T, seq func(yield func(*model.ZipEntry, error) bool)) []*model.ZipEntry {
	t.Helper()
	var entries []*model.ZipEntry
	for entry, err := range seq {
		gt.NoError(t, err)
		entries = append(entries, entry)
	}
	return entries
}

func paths(entries []*model.ZipEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Path)
	}
	return out
}

func TestBundlers(t *testing.T) {
	testCases := map[string]struct {
		bundler  interfaces.Bundler
		variants []string
		members  []string
		expected []string
	}{
		"font-awesome keeps allowed variants": {
			bundler:  bundler.FontAwesome,
			variants: []string{"solid"},
			members: []string{
				"root/",
				"root/svgs/solid/house.svg",
				"root/svgs/brands/github.svg",
			},
			expected: []string{"solid/house.svg"},
		},
		"font-awesome skips extra nesting and other files": {
			bundler:  bundler.FontAwesome,
			variants: []string{"solid", "regular"},
			members: []string{
				"fontawesome-free-6.7.2-web/svgs/solid/arrow-right.svg",
				"fontawesome-free-6.7.2-web/svgs/regular/heart.svg",
				"fontawesome-free-6.7.2-web/svgs/solid/extra/deep.svg",
				"fontawesome-free-6.7.2-web/svgs/solid/LICENSE.txt",
				"fontawesome-free-6.7.2-web/css/all.css",
			},
			expected: []string{"solid/arrow-right.svg", "regular/heart.svg"},
		},
		"heroicons joins size and style": {
			bundler:  bundler.Heroicons,
			variants: []string{"24/outline", "20/solid"},
			members: []string{
				"heroicons-2.2.0/optimized/24/outline/arrow-right.svg",
				"heroicons-2.2.0/optimized/24/solid/arrow-right.svg",
				"heroicons-2.2.0/optimized/20/solid/house.svg",
				"heroicons-2.2.0/optimized/20/house.svg",
				"heroicons-2.2.0/src/24/outline/arrow-right.svg",
			},
			expected: []string{"24/outline/arrow-right.svg", "20/solid/house.svg"},
		},
		"lucide rejects nested directories": {
			bundler:  bundler.Lucide,
			variants: []string{"regular"},
			members: []string{
				"root/icons/arrow-down.svg",
				"root/icons/categories/x.svg",
				"root/icons/arrow-down.json",
			},
			expected: []string{"arrow-down.svg"},
		},
		"material-community is flat and ignores templates": {
			bundler: bundler.MaterialCommunity,
			members: []string{
				"MaterialDesign-2424e74/svg/ab-testing.svg",
				"MaterialDesign-2424e74/svg/abacus.svg",
				"MaterialDesign-2424e74/templates/icon.svg",
			},
			expected: []string{"ab-testing.svg", "abacus.svg"},
		},
		"material-official maps style directories": {
			bundler:  bundler.MaterialOfficial,
			variants: []string{"filled", "outlined", "two-tone"},
			members: []string{
				"material-design-icons-4.0.0/src/action/account_balance/materialicons/24px.svg",
				"material-design-icons-4.0.0/src/action/account_balance/materialiconsoutlined/24px.svg",
				"material-design-icons-4.0.0/src/action/account_balance/materialiconsround/24px.svg",
				"material-design-icons-4.0.0/src/action/3d_rotation/materialiconstwotone/24px.svg",
				"material-design-icons-4.0.0/src/action/3d_rotation/materialiconsunknown/24px.svg",
				"material-design-icons-4.0.0/src/action/3d_rotation/materialicons/20px.svg",
				"material-design-icons-4.0.0/src/action/3d_rotation/materialicons/foo_24px.svg",
			},
			expected: []string{
				"filled/account-balance.svg",
				"outlined/account-balance.svg",
				"two-tone/3d-rotation.svg",
			},
		},
		"phosphor keeps weights": {
			bundler:  bundler.Phosphor,
			variants: []string{"regular", "bold"},
			members: []string{
				"core-2.1.1/assets/regular/house.svg",
				"core-2.1.1/assets/bold/house-bold.svg",
				"core-2.1.1/assets/thin/house-thin.svg",
			},
			expected: []string{"regular/house.svg", "bold/house-bold.svg"},
		},
		"marker appearing twice is skipped": {
			bundler:  bundler.FontAwesome,
			variants: []string{"solid"},
			members:  []string{"root/svgs/vendor/svgs/solid/house.svg"},
			expected: []string{},
		},
		"empty archive": {
			bundler:  bundler.Lucide,
			members:  nil,
			expected: []string{},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			archive := newMemArchive(tc.members...)
			entries := collect(t, tc.bundler(archive, configWithVariants(tc.variants...)))
			gt.Value(t, paths(entries)).Equal(tc.expected)
		})
	}
}

func TestBundler_ContentIsMemberData(t *testing.T) {
	archive := newMemArchive("root/icons/arrow-down.svg")
	entries := collect(t, bundler.Lucide(archive, configWithVariants()))
	gt.Array(t, entries).Length(1)
	gt.Value(t, string(entries[0].Content)).Equal("<svg>root/icons/arrow-down.svg</svg>")
}

func TestBundler_SkippedMembersAreNotRead(t *testing.T) {
	archive := newMemArchive(
		"root/svgs/brands/github.svg",
		"root/README.md",
	)
	entries := collect(t, bundler.FontAwesome(archive, configWithVariants("solid")))
	gt.Array(t, entries).Length(0)
	gt.Value(t, archive.openings).Equal(0)
}

func TestBundler_ListError(t *testing.T) {
	archive := newMemArchive()
	archive.listErr = errors.New("archive closed")

	var errs int
	for _, err := range bundler.Lucide(archive, configWithVariants()) {
		gt.Error(t, err)
		errs++
	}
	gt.Value(t, errs).Equal(1)
}

func TestBundler_OpenError(t *testing.T) {
	archive := newMemArchive("root/icons/a.svg", "root/icons/b.svg")
	archive.openErr = errors.New("corrupt member")

	var errs int
	for entry, err := range bundler.Lucide(archive, configWithVariants()) {
		gt.Value(t, entry).Nil()
		gt.Error(t, err)
		errs++
		break
	}
	gt.Value(t, errs).Equal(1)
	gt.Value(t, archive.openings).Equal(1)
}

func TestLookup(t *testing.T) {
	fn, err := bundler.Lookup("lucide", "extract")
	gt.NoError(t, err)
	gt.NotNil(t, fn)

	_, err = bundler.Lookup("unknown-pack", "extract")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrUnknownBundler))

	_, err = bundler.Lookup("lucide", "run")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrUnknownBundler))
}

func TestResolve(t *testing.T) {
	testCases := map[string]struct {
		build    model.BuildConfig
		packName string
		wantErr  bool
	}{
		"default module uses pack name": {
			build:    model.BuildConfig{Module: "pack", Entry: "extract"},
			packName: "phosphor",
		},
		"empty build section": {
			build:    model.BuildConfig{},
			packName: "heroicons",
		},
		"explicit module": {
			build:    model.BuildConfig{Module: "material-official", Entry: "extract"},
			packName: "my-material",
		},
		"unknown pack directory": {
			build:    model.BuildConfig{Module: "pack", Entry: "extract"},
			packName: "feather",
			wantErr:  true,
		},
		"unknown entry": {
			build:    model.BuildConfig{Module: "lucide", Entry: "build"},
			packName: "lucide",
			wantErr:  true,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			fn, err := bundler.Resolve(tc.build, tc.packName)
			if tc.wantErr {
				gt.Error(t, err)
				gt.True(t, errors.Is(err, types.ErrUnknownBundler))
				return
			}
			gt.NoError(t, err)
			gt.NotNil(t, fn)
		})
	}
}

func TestNames(t *testing.T) {
	gt.Value(t, bundler.Names()).Equal([]string{
		"font-awesome",
		"heroicons",
		"lucide",
		"material-community",
		"material-official",
		"phosphor",
	})
}

func TestMaterialVariant(t *testing.T) {
	v, ok := bundler.MaterialVariant("materialiconsround")
	gt.True(t, ok)
	gt.Value(t, v).Equal("rounded")

	_, ok = bundler.MaterialVariant("materialsymbols")
	gt.False(t, ok)
}
