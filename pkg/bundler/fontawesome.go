package bundler

import (
	"iter"

	"github.com/m-mizutani/iconpack/pkg/domain/interfaces"
	"github.com/m-mizutani/iconpack/pkg/domain/model"
)

// FontAwesome extracts <root>/svgs/{variant}/{name}.svg from a Font Awesome
// free web release into {variant}/{name}.svg.
func FontAwesome(archive interfaces.Archive, cfg *model.UpstreamConfig) iter.Seq2[*model.ZipEntry, error] {
	return extractLayout(archive, cfg, "/svgs/", ".svg", variantFile)
}

// variantFile accepts exactly {variant}/{file} with variant in the allow-list
func variantFile(parts []string, cfg *model.UpstreamConfig) (string, bool) {
	if len(parts) != 2 || !nonEmpty(parts...) {
		return "", false
	}
	variant, filename := parts[0], parts[1]
	if !cfg.HasVariant(variant) {
		return "", false
	}
	return variant + "/" + filename, true
}
