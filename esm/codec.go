package esm

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Reader walks the records of a plugin file strictly sequentially.
type Reader struct {
	r    io.Reader
	read int64
}

// NewReader wraps r for sequential record scanning.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// BytesRead reports how many container bytes have been consumed.
func (r *Reader) BytesRead() int64 {
	return r.read
}

// Root reads the leading TES3 record. The payload is returned as-is so
// callers can copy or discard it; it is never parsed.
func (r *Reader) Root() (*Record, error) {
	rec, err := r.Next()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file: %w", ErrFormat)
	}
	if err != nil {
		return nil, err
	}
	if rec.Tag != RootTag {
		return nil, fmt.Errorf("bad root tag %q: %w", rec.Tag, ErrFormat)
	}
	return rec, nil
}

// Next reads the next top-level record. A clean end of stream at the
// start of a header returns io.EOF; any short read after that point is
// reported as ErrCorrupt.
func (r *Reader) Next() (*Record, error) {
	var header [recordHeaderLen]byte
	n, err := io.ReadFull(r.r, header[:])
	r.read += int64(n)
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("truncated record header: %w", ErrCorrupt)
		}
		return nil, fmt.Errorf("read record header: %w", err)
	}

	rec := &Record{Tag: string(header[:4])}
	copy(rec.Meta[:], header[8:])

	size := binary.LittleEndian.Uint32(header[4:8])
	rec.Data = make([]byte, size)
	n, err = io.ReadFull(r.r, rec.Data)
	r.read += int64(n)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("record %q: payload short of declared %d bytes: %w", rec.Tag, size, ErrCorrupt)
		}
		return nil, fmt.Errorf("record %q: read payload: %w", rec.Tag, err)
	}
	return rec, nil
}

// WriteRecord serializes a record header and payload in the exact layout
// they were read in, metadata bytes included.
func WriteRecord(w io.Writer, rec *Record) error {
	var header [recordHeaderLen]byte
	copy(header[:4], rec.Tag)
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(rec.Data)))
	copy(header[8:], rec.Meta[:])

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("record %q: write header: %w", rec.Tag, err)
	}
	if _, err := w.Write(rec.Data); err != nil {
		return fmt.Errorf("record %q: write payload: %w", rec.Tag, err)
	}
	return nil
}

// ParseSubRecords splits a record payload into its subrecords in file
// order. A subrecord that overruns the payload bounds is a corruption
// error, not something to skip.
func ParseSubRecords(payload []byte) ([]SubRecord, error) {
	var subs []SubRecord
	for off := 0; off < len(payload); {
		if off+subHeaderLen > len(payload) {
			return nil, fmt.Errorf("subrecord header at offset %d overruns payload: %w", off, ErrCorrupt)
		}
		tag := string(payload[off : off+4])
		size := int(binary.LittleEndian.Uint32(payload[off+4 : off+8]))
		off += subHeaderLen
		if off+size > len(payload) {
			return nil, fmt.Errorf("subrecord %q declares %d bytes past payload end: %w", tag, size, ErrCorrupt)
		}
		subs = append(subs, SubRecord{Tag: tag, Data: payload[off : off+size]})
		off += size
	}
	return subs, nil
}

// BuildPayload re-serializes subrecords into a record payload, preserving
// their order. The inverse of ParseSubRecords.
func BuildPayload(subs []SubRecord) []byte {
	total := 0
	for i := range subs {
		total += subs[i].EncodedLen()
	}
	payload := make([]byte, 0, total)
	var header [subHeaderLen]byte
	for i := range subs {
		copy(header[:4], subs[i].Tag)
		binary.LittleEndian.PutUint32(header[4:8], uint32(len(subs[i].Data)))
		payload = append(payload, header[:]...)
		payload = append(payload, subs[i].Data...)
	}
	return payload
}
