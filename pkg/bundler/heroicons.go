package bundler

import (
	"iter"

	"github.com/m-mizutani/iconpack/pkg/domain/interfaces"
	"github.com/m-mizutani/iconpack/pkg/domain/model"
)

// Heroicons extracts <root>/optimized/{size}/{style}/{name}.svg. The variant
// is "{size}/{style}", e.g. "24/outline".
func Heroicons(archive interfaces.Archive, cfg *model.UpstreamConfig) iter.Seq2[*model.ZipEntry, error] {
	return extractLayout(archive, cfg, "/optimized/", ".svg", func(parts []string, cfg *model.UpstreamConfig) (string, bool) {
		if len(parts) != 3 || !nonEmpty(parts...) {
			return "", false
		}
		variant := parts[0] + "/" + parts[1]
		if !cfg.HasVariant(variant) {
			return "", false
		}
		return variant + "/" + parts[2], true
	})
}
