// Package bundler holds the per-upstream icon extractors and the registry
// that resolves upstream.toml [build] settings to one of them.
package bundler

import (
	"io"
	"iter"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconpack/pkg/domain/interfaces"
	"github.com/m-mizutani/iconpack/pkg/domain/model"
	"github.com/m-mizutani/iconpack/pkg/domain/types"
)

// EntryExtract is the only entry point every bundler exposes
const EntryExtract = model.DefaultBuildEntry

var registry = map[string]map[string]interfaces.Bundler{
	"font-awesome":       {EntryExtract: FontAwesome},
	"heroicons":          {EntryExtract: Heroicons},
	"lucide":             {EntryExtract: Lucide},
	"material-community": {EntryExtract: MaterialCommunity},
	"material-official":  {EntryExtract: MaterialOfficial},
	"phosphor":           {EntryExtract: Phosphor},
}

// Names returns registered bundler names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the bundler for a pack. The default module name refers to
// the pack itself, so it is replaced by packName before lookup.
func Resolve(build model.BuildConfig, packName string) (interfaces.Bundler, error) {
	module := build.Module
	if module == "" || module == model.DefaultBuildModule {
		module = packName
	}
	entry := build.Entry
	if entry == "" {
		entry = EntryExtract
	}
	return Lookup(module, entry)
}

// Lookup returns the bundler registered as module with the given entry
func Lookup(module, entry string) (interfaces.Bundler, error) {
	entries, ok := registry[module]
	if !ok {
		return nil, goerr.Wrap(types.ErrUnknownBundler, "no bundler registered for module",
			goerr.V("module", module),
			goerr.V("available", strings.Join(Names(), ",")),
		)
	}
	fn, ok := entries[entry]
	if !ok {
		return nil, goerr.Wrap(types.ErrUnknownBundler, "bundler has no such entry",
			goerr.V("module", module),
			goerr.V("entry", entry),
		)
	}
	return fn, nil
}

// layout maps the path components after an upstream's marker directory to
// the zip-relative path of the icon. ok=false skips the member.
type layout func(parts []string, cfg *model.UpstreamConfig) (zipPath string, ok bool)

// extractLayout walks archive members under marker ending in suffix and
// yields the ones accepted by fn, with their content read eagerly.
func extractLayout(archive interfaces.Archive, cfg *model.UpstreamConfig, marker, suffix string, fn layout) iter.Seq2[*model.ZipEntry, error] {
	return func(yield func(*model.ZipEntry, error) bool) {
		members, err := archive.Members()
		if err != nil {
			yield(nil, goerr.Wrap(err, "failed to list archive members"))
			return
		}

		for _, member := range members {
			if !member.IsFile() {
				continue
			}
			if !strings.Contains(member.Name, marker) || !strings.HasSuffix(member.Name, suffix) {
				continue
			}

			halves := strings.Split(member.Name, marker)
			if len(halves) != 2 {
				continue
			}

			zipPath, ok := fn(strings.Split(halves[1], "/"), cfg)
			if !ok {
				continue
			}

			content, err := readMember(archive, member)
			if err != nil {
				if !yield(nil, err) {
					return
				}
				continue
			}

			if !yield(&model.ZipEntry{Path: zipPath, Content: content}, nil) {
				return
			}
		}
	}
}

func readMember(archive interfaces.Archive, member model.ArchiveMember) ([]byte, error) {
	r, err := archive.Open(member)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open archive member", goerr.V("member", member.Name))
	}
	defer func() {
		_ = r.Close()
	}()

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read archive member", goerr.V("member", member.Name))
	}
	return content, nil
}

// nonEmpty reports whether every part is a non-empty path segment
func nonEmpty(parts ...string) bool {
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}
