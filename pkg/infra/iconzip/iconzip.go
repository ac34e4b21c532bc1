// Package iconzip writes extracted icons into a single deflate-compressed zip.
package iconzip

import (
	"archive/zip"
	"io"
	"iter"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconpack/pkg/domain/model"
)

// entryTime is stamped on every entry so identical input yields identical bytes
var entryTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Option configures Write
type Option func(*writeOptions)

type writeOptions struct {
	skipEmpty bool
}

// WithSkipEmpty leaves outputPath untouched when the sequence yields no entries
func WithSkipEmpty() Option {
	return func(o *writeOptions) {
		o.skipEmpty = true
	}
}

// Write streams every entry into a temporary file next to outputPath (creating
// parent directories) and renames it into place once the zip is finalized, so a
// failed run never replaces an existing outputPath. It returns the number of
// entries written. Entries sharing a path are written twice; readers see the last one.
func Write(entries iter.Seq2[*model.ZipEntry, error], outputPath string, opts ...Option) (int, error) {
	var options writeOptions
	for _, opt := range opts {
		opt(&options)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return 0, goerr.Wrap(err, "failed to create output directory", goerr.V("path", outputPath))
	}

	tmp, err := os.CreateTemp(filepath.Dir(outputPath), "."+filepath.Base(outputPath)+".part-*")
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create icon zip", goerr.V("path", outputPath))
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	count, err := WriteTo(entries, tmp)
	if err != nil {
		return count, goerr.Wrap(err, "failed to write icon zip", goerr.V("path", outputPath))
	}
	if err := tmp.Close(); err != nil {
		return count, goerr.Wrap(err, "failed to close icon zip", goerr.V("path", tmpPath))
	}
	if count == 0 && options.skipEmpty {
		return 0, nil
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return count, goerr.Wrap(err, "failed to set icon zip mode", goerr.V("path", tmpPath))
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		return count, goerr.Wrap(err, "failed to move icon zip into place", goerr.V("path", outputPath))
	}
	committed = true

	return count, nil
}

// WriteTo writes entries as a zip stream to w
func WriteTo(entries iter.Seq2[*model.ZipEntry, error], w io.Writer) (int, error) {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	count := 0
	for entry, err := range entries {
		if err != nil {
			return count, err
		}

		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     entry.Path,
			Method:   zip.Deflate,
			Modified: entryTime,
		})
		if err != nil {
			return count, goerr.Wrap(err, "failed to create zip entry", goerr.V("entry", entry.Path))
		}
		if _, err := fw.Write(entry.Content); err != nil {
			return count, goerr.Wrap(err, "failed to write zip entry", goerr.V("entry", entry.Path))
		}
		count++
	}

	if err := zw.Close(); err != nil {
		return count, goerr.Wrap(err, "failed to finalize zip")
	}
	return count, nil
}
