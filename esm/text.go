package esm

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// DecodeText converts a null-terminated Windows-1252 payload into a Go
// string. Bytes after the first null are ignored; payloads without a
// null decode in full. Undefined codepage bytes decode to U+FFFD, so
// decoding never fails.
func DecodeText(data []byte) string {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		// The Windows-1252 decoder substitutes rather than erroring;
		// keep the raw bytes if that ever changes.
		return string(data)
	}
	return string(decoded)
}

// EncodeText converts a string back to Windows-1252, substituting
// unsupported characters, and guarantees exactly one trailing null byte.
func EncodeText(text string) []byte {
	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	encoded, err := enc.Bytes([]byte(text))
	if err != nil {
		encoded = []byte(text)
	}
	if len(encoded) == 0 || encoded[len(encoded)-1] != 0 {
		encoded = append(encoded, 0)
	}
	return encoded
}
