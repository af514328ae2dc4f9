package esm

import (
	"errors"
)

const (
	// RootTag is the magic tag every plugin file must start with.
	RootTag = "TES3"

	// recordHeaderLen is tag(4) + size(4) + 8 opaque metadata bytes.
	// The metadata bytes are never interpreted, only carried through.
	recordHeaderLen = 16

	// subHeaderLen is tag(4) + size(4).
	subHeaderLen = 8
)

// Record is one top-level chunk of a plugin file. Data holds exactly the
// declared payload; Meta holds the 8 header bytes between the size field
// and the payload, passed through unmodified.
type Record struct {
	Tag  string
	Meta [8]byte
	Data []byte
}

// SubRecord is one field inside a record's payload.
type SubRecord struct {
	Tag  string
	Data []byte
}

// EncodedLen returns the on-disk size of the subrecord, header included.
func (s *SubRecord) EncodedLen() int {
	return subHeaderLen + len(s.Data)
}

var (
	// ErrFormat means the file does not start with the TES3 root header.
	ErrFormat = errors.New("not a TES3 plugin")

	// ErrCorrupt means a header or payload ended short of its declared
	// size, or a subrecord overran its record's payload bounds.
	ErrCorrupt = errors.New("corrupt record stream")
)

// ProgressFunc receives the cumulative number of container bytes consumed
// so far. Called once per record while scanning.
type ProgressFunc func(bytesRead int64)
