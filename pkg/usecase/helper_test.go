package usecase_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
)

const lucideUpstream = `
[source]
url = "https://github.com/lucide-icons/lucide/archive/refs/tags/0.460.0.zip"
tag = "0.460.0"
sha256 = ""

[license]
spdx = "ISC"
copyright = "Copyright (c) Lucide Contributors 2022"
upstream_license_url = "https://github.com/lucide-icons/lucide/blob/main/LICENSE"
attribution_required = true

[pack]
prefixes = ["lucide", "luc"]
description = "Beautiful & consistent icons"
source_url = "https://lucide.dev"
variants = []
`

// newPack lays out packsDir/name with upstream.toml and an output directory
func newPack(t *testing.T, packsDir, name, upstream string) string {
	t.Helper()
	root := filepath.Join(packsDir, name)
	gt.NoError(t, os.MkdirAll(filepath.Join(root, "src", "justmyresource_"+name), 0755))
	gt.NoError(t, os.WriteFile(filepath.Join(root, "upstream.toml"), []byte(upstream), 0644))
	return root
}

// writeCachedZip stores a zip with the given files under root/cache/fileName
func writeCachedZip(t *testing.T, root, fileName string, files map[string]string) string {
	t.Helper()
	cacheDir := filepath.Join(root, "cache")
	gt.NoError(t, os.MkdirAll(cacheDir, 0755))

	path := filepath.Join(cacheDir, fileName)
	f, err := os.Create(path)
	gt.NoError(t, err)

	w := zip.NewWriter(f)
	for name, content := range files {
		fw, err := w.Create(name)
		gt.NoError(t, err)
		_, err = fw.Write([]byte(content))
		gt.NoError(t, err)
	}
	gt.NoError(t, w.Close())
	gt.NoError(t, f.Close())
	return path
}
