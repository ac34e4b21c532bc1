package bundler

import (
	"iter"

	"github.com/m-mizutani/iconpack/pkg/domain/interfaces"
	"github.com/m-mizutani/iconpack/pkg/domain/model"
	"github.com/m-mizutani/iconpack/pkg/utils/naming"
)

const materialIconFile = "24px.svg"

// materialVariants maps upstream style directories to variant names
var materialVariants = map[string]string{
	"materialicons":         "filled",
	"materialiconsoutlined": "outlined",
	"materialiconsround":    "rounded",
	"materialiconssharp":    "sharp",
	"materialiconstwotone":  "two-tone",
}

// MaterialVariant returns the variant name of a Material style directory
func MaterialVariant(dir string) (string, bool) {
	v, ok := materialVariants[dir]
	return v, ok
}

// MaterialOfficial extracts
// <root>/src/{category}/{icon_name}/{style_dir}/24px.svg from google's
// material-design-icons into {variant}/{icon-name}.svg.
func MaterialOfficial(archive interfaces.Archive, cfg *model.UpstreamConfig) iter.Seq2[*model.ZipEntry, error] {
	return extractLayout(archive, cfg, "/src/", materialIconFile, func(parts []string, cfg *model.UpstreamConfig) (string, bool) {
		if len(parts) != 4 || !nonEmpty(parts...) || parts[3] != materialIconFile {
			return "", false
		}
		variant, ok := MaterialVariant(parts[2])
		if !ok || !cfg.HasVariant(variant) {
			return "", false
		}
		return variant + "/" + naming.AddExtension(naming.ToKebabCase(parts[1]), ".svg"), true
	})
}
