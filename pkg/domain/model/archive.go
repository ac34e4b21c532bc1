package model

// MemberKind discriminates archive members
type MemberKind int

const (
	MemberFile MemberKind = iota
	MemberDir
	// MemberOther covers symlinks, devices and other non-regular entries
	MemberOther
)

// ArchiveMember is one entry of an open archive. Name is the full internal
// path with forward slashes. Index is the position in archive order and is
// only meaningful to the archive that listed the member.
type ArchiveMember struct {
	Name  string
	Kind  MemberKind
	Index int
}

// IsFile reports whether the member is a regular file
func (x ArchiveMember) IsFile() bool {
	return x.Kind == MemberFile
}
