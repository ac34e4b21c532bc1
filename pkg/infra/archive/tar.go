package archive

import (
	"archive/tar"
	"compress/bzip2"
	"errors"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconpack/pkg/domain/model"
	"github.com/ulikunitz/xz"
)

// tarBackend reads a tarball as a forward-only stream. Members are opened by
// advancing the stream to the requested index; asking for an index behind the
// cursor reopens the file and decompresses from the start.
type tarBackend struct {
	path   string
	format Format

	listed []model.ArchiveMember

	file   *os.File
	decomp io.Closer
	tr     *tar.Reader
	// cursor is the index of the member the next call to tr.Next returns
	cursor int
}

func openTar(path string, format Format) (*tarBackend, error) {
	b := &tarBackend{path: path, format: format}
	if err := b.rewind(); err != nil {
		return nil, err
	}
	return b, nil
}

// rewind (re)opens the file and positions the stream before the first member
func (b *tarBackend) rewind() error {
	if err := b.closeStream(); err != nil {
		return err
	}

	f, err := os.Open(b.path)
	if err != nil {
		return err
	}

	var r io.Reader = f
	var decomp io.Closer
	switch b.format {
	case FormatTarGzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return goerr.Wrap(err, "failed to create gzip reader")
		}
		r, decomp = gz, gz
	case FormatTarBzip2:
		r = bzip2.NewReader(f)
	case FormatTarXz:
		xr, err := xz.NewReader(f)
		if err != nil {
			_ = f.Close()
			return goerr.Wrap(err, "failed to create xz reader")
		}
		r = xr
	case FormatTarZstd:
		zr, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return goerr.Wrap(err, "failed to create zstd reader")
		}
		r, decomp = zr, zstdCloser{zr}
	}

	b.file = f
	b.decomp = decomp
	b.tr = tar.NewReader(r)
	b.cursor = 0
	return nil
}

// next returns the next member header, skipping PAX global headers so that
// listing and opening agree on member indexes
func (b *tarBackend) next() (*tar.Header, error) {
	for {
		hdr, err := b.tr.Next()
		if err != nil {
			return nil, err
		}
		if hdr.Typeflag == tar.TypeXGlobalHeader {
			continue
		}
		return hdr, nil
	}
}

func (b *tarBackend) members() ([]model.ArchiveMember, error) {
	if b.listed != nil {
		return b.listed, nil
	}

	if err := b.rewind(); err != nil {
		return nil, err
	}

	listed := []model.ArchiveMember{}
	for {
		hdr, err := b.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read tar header", goerr.V("path", b.path))
		}

		listed = append(listed, model.ArchiveMember{
			Name:  hdr.Name,
			Kind:  memberKind(hdr.Typeflag),
			Index: len(listed),
		})
	}
	b.listed = listed

	// Listing consumed the stream; start over for Open
	if err := b.rewind(); err != nil {
		return nil, err
	}
	return listed, nil
}

func memberKind(flag byte) model.MemberKind {
	switch flag {
	case tar.TypeReg, tar.TypeCont:
		return model.MemberFile
	case tar.TypeDir:
		return model.MemberDir
	default:
		return model.MemberOther
	}
}

func (b *tarBackend) open(member model.ArchiveMember) (io.ReadCloser, error) {
	if member.Index < b.cursor {
		if err := b.rewind(); err != nil {
			return nil, err
		}
	}

	for {
		hdr, err := b.next()
		if errors.Is(err, io.EOF) {
			return nil, goerr.New("member not found in tar archive", goerr.V("member", member.Name))
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read tar header", goerr.V("path", b.path))
		}

		idx := b.cursor
		b.cursor++
		if idx < member.Index {
			continue
		}
		if hdr.Name != member.Name {
			return nil, goerr.New("member does not belong to this archive",
				goerr.V("member", member.Name),
				goerr.V("found", hdr.Name),
			)
		}
		return io.NopCloser(b.tr), nil
	}
}

func (b *tarBackend) closeStream() error {
	var errs []error
	if b.decomp != nil {
		errs = append(errs, b.decomp.Close())
		b.decomp = nil
	}
	if b.file != nil {
		errs = append(errs, b.file.Close())
		b.file = nil
	}
	b.tr = nil
	return errors.Join(errs...)
}

func (b *tarBackend) close() error {
	return b.closeStream()
}

// zstdCloser adapts zstd.Decoder, whose Close returns nothing
type zstdCloser struct {
	d *zstd.Decoder
}

func (c zstdCloser) Close() error {
	c.d.Close()
	return nil
}
