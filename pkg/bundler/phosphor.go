package bundler

import (
	"iter"

	"github.com/m-mizutani/iconpack/pkg/domain/interfaces"
	"github.com/m-mizutani/iconpack/pkg/domain/model"
)

// Phosphor extracts <root>/assets/{weight}/{name}.svg from the phosphor core
// repository into {weight}/{name}.svg.
func Phosphor(archive interfaces.Archive, cfg *model.UpstreamConfig) iter.Seq2[*model.ZipEntry, error] {
	return extractLayout(archive, cfg, "/assets/", ".svg", variantFile)
}
