package bundler

import (
	"iter"

	"github.com/m-mizutani/iconpack/pkg/domain/interfaces"
	"github.com/m-mizutani/iconpack/pkg/domain/model"
)

// Lucide extracts <root>/icons/{name}.svg into a flat {name}.svg layout.
// Nested directories such as icons/categories/ are skipped.
func Lucide(archive interfaces.Archive, cfg *model.UpstreamConfig) iter.Seq2[*model.ZipEntry, error] {
	return extractLayout(archive, cfg, "/icons/", ".svg", flatFile)
}

// MaterialCommunity extracts <root>/svg/{name}.svg from the Templarian
// MaterialDesign repository into a flat layout.
func MaterialCommunity(archive interfaces.Archive, cfg *model.UpstreamConfig) iter.Seq2[*model.ZipEntry, error] {
	return extractLayout(archive, cfg, "/svg/", ".svg", flatFile)
}

// flatFile accepts a single file name. Single-variant packs have no
// variant gate.
func flatFile(parts []string, _ *model.UpstreamConfig) (string, bool) {
	if len(parts) != 1 || !nonEmpty(parts...) {
		return "", false
	}
	return parts[0], true
}
