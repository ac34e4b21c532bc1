package interfaces

import (
	"io"
	"iter"

	"github.com/m-mizutani/iconpack/pkg/domain/model"
)

// Archive is a read-only view over an upstream zip or tar archive
type Archive interface {
	// Members lists every entry, files and directories, in archive order
	Members() ([]model.ArchiveMember, error)

	// Open returns a reader positioned at the start of member's content
	Open(member model.ArchiveMember) (io.ReadCloser, error)

	// Close releases the underlying file. Members and Open fail afterwards.
	Close() error
}

// Bundler extracts icons of one upstream library from its release archive.
// The returned sequence is single-pass: iterate it once per opened archive.
// Members that do not fit the upstream layout are skipped silently; only
// read failures are yielded as errors.
type Bundler func(archive Archive, cfg *model.UpstreamConfig) iter.Seq2[*model.ZipEntry, error]
