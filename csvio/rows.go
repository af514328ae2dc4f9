// Package csvio reads and writes the fixed five-column translation
// table. It knows nothing about the container format beyond the row
// schema.
package csvio

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/morrowtools/esm-translator-go/esm"
)

// Header is the fixed column schema, in column order.
var Header = []string{"unique_id", "record_type", "subrecord_type", "original_text", "translated_text"}

// Writer emits translation rows as CSV. It implements esm.RowWriter and
// writes the header line lazily so it always appears exactly once, even
// for an empty extraction.
type Writer struct {
	cw          *csv.Writer
	wroteHeader bool
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{cw: csv.NewWriter(w)}
}

func (w *Writer) writeHeader() error {
	if w.wroteHeader {
		return nil
	}
	w.wroteHeader = true
	return w.cw.Write(Header)
}

// Write appends one row.
func (w *Writer) Write(row esm.Row) error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	return w.cw.Write([]string{
		row.UniqueID,
		row.RecordType,
		row.SubRecordType,
		row.OriginalText,
		row.TranslatedText,
	})
}

// Flush writes any buffered rows (and the header, if nothing was
// written) and reports the first error seen.
func (w *Writer) Flush() error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	w.cw.Flush()
	return w.cw.Error()
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripBOM removes a leading UTF-8 byte order mark, which spreadsheet
// tools like to prepend when saving.
func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if lead, err := br.Peek(3); err == nil && bytes.Equal(lead, utf8BOM) {
		br.Discard(3)
	}
	return br
}

// ReadRows parses a translation table. Columns are located by header
// name, so column order and extra columns are tolerated; unique_id,
// original_text and translated_text must be present. Any malformed row
// is a fatal error.
func ReadRows(r io.Reader) ([]esm.Row, error) {
	cr := csv.NewReader(stripBOM(r))
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("csv is empty")
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	col := func(name string) (int, error) {
		i, ok := idx[name]
		if !ok {
			return 0, fmt.Errorf("csv missing %q column", name)
		}
		return i, nil
	}

	idCol, err := col("unique_id")
	if err != nil {
		return nil, err
	}
	origCol, err := col("original_text")
	if err != nil {
		return nil, err
	}
	transCol, err := col("translated_text")
	if err != nil {
		return nil, err
	}
	recCol, hasRec := idx["record_type"]
	subCol, hasSub := idx["subrecord_type"]

	var rows []esm.Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", line, err)
		}
		row := esm.Row{
			UniqueID:       rec[idCol],
			OriginalText:   rec[origCol],
			TranslatedText: rec[transCol],
		}
		if hasRec {
			row.RecordType = rec[recCol]
		}
		if hasSub {
			row.SubRecordType = rec[subCol]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadTranslations builds the injection map from a translation table,
// keeping only rows whose translated text is non-empty.
func LoadTranslations(r io.Reader) (map[string]esm.TranslationEntry, error) {
	rows, err := ReadRows(r)
	if err != nil {
		return nil, err
	}
	translations := make(map[string]esm.TranslationEntry)
	for _, row := range rows {
		if strings.TrimSpace(row.TranslatedText) == "" {
			continue
		}
		translations[row.UniqueID] = esm.TranslationEntry{
			Original:   row.OriginalText,
			Translated: row.TranslatedText,
		}
	}
	return translations, nil
}
