package archive

import (
	"archive/zip"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconpack/pkg/domain/model"
)

type zipBackend struct {
	reader *zip.ReadCloser
}

func openZip(path string) (*zipBackend, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	r.RegisterDecompressor(zip.Deflate, flate.NewReader)

	return &zipBackend{reader: r}, nil
}

func (b *zipBackend) members() ([]model.ArchiveMember, error) {
	members := make([]model.ArchiveMember, 0, len(b.reader.File))
	for i, f := range b.reader.File {
		kind := model.MemberFile
		mode := f.FileInfo().Mode()
		switch {
		case mode.IsDir():
			kind = model.MemberDir
		case !mode.IsRegular():
			kind = model.MemberOther
		}

		members = append(members, model.ArchiveMember{
			Name:  f.Name,
			Kind:  kind,
			Index: i,
		})
	}
	return members, nil
}

func (b *zipBackend) open(member model.ArchiveMember) (io.ReadCloser, error) {
	if member.Index < 0 || member.Index >= len(b.reader.File) || b.reader.File[member.Index].Name != member.Name {
		return nil, goerr.New("member does not belong to this archive", goerr.V("member", member.Name))
	}

	rc, err := b.reader.File[member.Index].Open()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open zip member", goerr.V("member", member.Name))
	}
	return rc, nil
}

func (b *zipBackend) close() error {
	return b.reader.Close()
}
