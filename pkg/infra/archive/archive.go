// Package archive provides one read interface over the zip and tar
// (plain, gzip, bzip2, xz, zstd) archives upstream icon libraries ship.
package archive

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconpack/pkg/domain/interfaces"
	"github.com/m-mizutani/iconpack/pkg/domain/model"
	"github.com/m-mizutani/iconpack/pkg/domain/types"
)

// Format identifies the container and compression of an archive file
type Format int

const (
	FormatUnknown Format = iota
	FormatZip
	FormatTar
	FormatTarGzip
	FormatTarBzip2
	FormatTarXz
	FormatTarZstd
)

func (f Format) String() string {
	switch f {
	case FormatZip:
		return "zip"
	case FormatTar:
		return "tar"
	case FormatTarGzip:
		return "tar.gz"
	case FormatTarBzip2:
		return "tar.bz2"
	case FormatTarXz:
		return "tar.xz"
	case FormatTarZstd:
		return "tar.zst"
	default:
		return "unknown"
	}
}

// suffixes are checked in order, so compound suffixes come first
var suffixes = []struct {
	suffix string
	format Format
}{
	{".tar.gz", FormatTarGzip},
	{".tar.bz2", FormatTarBzip2},
	{".tar.xz", FormatTarXz},
	{".tar.zst", FormatTarZstd},
	{".tgz", FormatTarGzip},
	{".tbz2", FormatTarBzip2},
	{".txz", FormatTarXz},
	{".tzst", FormatTarZstd},
	{".zip", FormatZip},
	{".tar", FormatTar},
	{".gz", FormatTarGzip},
}

// DetectFormat selects the archive format from the file name suffix
func DetectFormat(path string) (Format, error) {
	name := strings.ToLower(filepath.Base(path))
	for _, s := range suffixes {
		if strings.HasSuffix(name, s.suffix) {
			return s.format, nil
		}
	}
	return FormatUnknown, goerr.Wrap(types.ErrUnknownArchiveType, "unsupported archive suffix", goerr.V("path", path))
}

// backend is the format specific half of a Reader, chosen once by Open
type backend interface {
	members() ([]model.ArchiveMember, error)
	open(member model.ArchiveMember) (io.ReadCloser, error)
	close() error
}

// Reader is an open archive. It implements interfaces.Archive.
type Reader struct {
	path    string
	format  Format
	backend backend
}

var _ interfaces.Archive = (*Reader)(nil)

// Open opens the archive at path, selecting zip or tar by suffix. Callers
// must Close the Reader; Close is safe to call more than once.
func Open(path string) (*Reader, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	var b backend
	switch format {
	case FormatZip:
		b, err = openZip(path)
	default:
		b, err = openTar(path, format)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open archive", goerr.V("path", path), goerr.V("format", format.String()))
	}

	return &Reader{path: path, format: format, backend: b}, nil
}

// Format returns the detected archive format
func (x *Reader) Format() Format { return x.format }

// Members lists all entries in archive order
func (x *Reader) Members() ([]model.ArchiveMember, error) {
	if x.backend == nil {
		return nil, goerr.Wrap(types.ErrArchiveState, "archive not open", goerr.V("path", x.path))
	}
	return x.backend.members()
}

// Open returns a reader over member's content. For tar archives the reader is
// valid until the next call to Open or Close.
func (x *Reader) Open(member model.ArchiveMember) (io.ReadCloser, error) {
	if x.backend == nil {
		return nil, goerr.Wrap(types.ErrArchiveState, "archive not open", goerr.V("path", x.path))
	}
	if !member.IsFile() {
		return nil, goerr.Wrap(types.ErrArchiveState, "member is not a regular file", goerr.V("member", member.Name))
	}
	return x.backend.open(member)
}

// Close releases the underlying file handle
func (x *Reader) Close() error {
	if x.backend == nil {
		return nil
	}
	b := x.backend
	x.backend = nil
	if err := b.close(); err != nil {
		return goerr.Wrap(err, "failed to close archive", goerr.V("path", x.path))
	}
	return nil
}
