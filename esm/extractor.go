package esm

import (
	"fmt"
	"io"
)

// Row is one exported translatable string. TranslatedText is empty on
// extraction and filled in by the translator before injection.
type Row struct {
	UniqueID       string
	RecordType     string
	SubRecordType  string
	OriginalText   string
	TranslatedText string
}

// RowWriter receives extracted rows in file order.
type RowWriter interface {
	Write(Row) error
}

// ExtractStats summarizes one extraction run.
type ExtractStats struct {
	Records int
	Strings int
}

// uniqueID builds the identifier that ties a row back to one subrecord
// occurrence. The occurrence suffix appears only when the record holds
// more than one occurrence of the subrecord type; the extractor and the
// injector must agree on this rule exactly.
func uniqueID(recType, objectID, subType string, index, total int) string {
	id := recType + "|" + objectID + "|" + subType
	if total > 1 {
		id = fmt.Sprintf("%s_%d", id, index)
	}
	return id
}

// Extract walks every record of the container and writes one row per
// translatable string. filter, when non-nil, restricts extraction to the
// record tags it maps to true. Records are never written anywhere;
// extraction only produces rows.
func Extract(r io.Reader, out RowWriter, filter map[string]bool, progress ProgressFunc) (ExtractStats, error) {
	var stats ExtractStats

	reader := NewReader(r)
	if _, err := reader.Root(); err != nil {
		return stats, err
	}

	for {
		rec, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, err
		}
		stats.Records++
		if progress != nil {
			progress(reader.BytesRead())
		}

		if filter != nil && !filter[rec.Tag] {
			continue
		}
		fields, ok := TranslatableSubRecords[rec.Tag]
		if !ok {
			continue
		}

		subs, err := ParseSubRecords(rec.Data)
		if err != nil {
			return stats, err
		}
		objectID := ObjectID(subs)

		occurrences := make(map[string][][]byte)
		for i := range subs {
			occurrences[subs[i].Tag] = append(occurrences[subs[i].Tag], subs[i].Data)
		}

		for _, subType := range fields {
			datas := occurrences[subType]
			for i, data := range datas {
				text := DecodeText(data)
				if !IsTranslatable(text) {
					continue
				}
				row := Row{
					UniqueID:      uniqueID(rec.Tag, objectID, subType, i, len(datas)),
					RecordType:    rec.Tag,
					SubRecordType: subType,
					OriginalText:  text,
				}
				if err := out.Write(row); err != nil {
					return stats, fmt.Errorf("write row %q: %w", row.UniqueID, err)
				}
				stats.Strings++
			}
		}
	}

	return stats, nil
}
