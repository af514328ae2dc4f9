package esm

import (
	"bytes"
	"io"
	"log"
	"strings"

	"github.com/morrowtools/esm-translator-go/common/i18n"
)

// TranslationEntry holds one loaded edit: the text the row was extracted
// from and its translation.
type TranslationEntry struct {
	Original   string
	Translated string
}

// InjectStats summarizes one injection run.
type InjectStats struct {
	Records    int
	Injected   int
	Mismatches int
}

// Inject streams the container from in to out, replacing translatable
// payloads whose identifier has a loaded translation. Records without
// translatable fields pass through byte-identical. Output is written
// incrementally; a fatal error mid-run leaves a truncated output file.
func Inject(in io.Reader, out io.Writer, translations map[string]TranslationEntry, progress ProgressFunc) (InjectStats, error) {
	var stats InjectStats
	i18n.InitLanguage()

	reader := NewReader(in)
	root, err := reader.Root()
	if err != nil {
		return stats, err
	}
	if err := WriteRecord(out, root); err != nil {
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

		fields, ok := TranslatableSubRecords[rec.Tag]
		if ok {
			if err := injectRecord(rec, fields, translations, &stats); err != nil {
				return stats, err
			}
		}
		if err := WriteRecord(out, rec); err != nil {
			return stats, err
		}
	}

	return stats, nil
}

// injectRecord rewrites rec in place when any of its subrecords match a
// loaded translation. The occurrence counting must reproduce the
// extractor's identifiers exactly, so totals are computed in a prepass
// before the replacement walk.
func injectRecord(rec *Record, fields []string, translations map[string]TranslationEntry, stats *InjectStats) error {
	subs, err := ParseSubRecords(rec.Data)
	if err != nil {
		return err
	}
	objectID := ObjectID(subs)

	fieldSet := make(map[string]bool, len(fields))
	for _, f := range fields {
		fieldSet[f] = true
	}

	totals := make(map[string]int)
	for i := range subs {
		totals[subs[i].Tag]++
	}

	modified := false
	counters := make(map[string]int)
	for i := range subs {
		subType := subs[i].Tag
		index := counters[subType]
		counters[subType]++

		if !fieldSet[subType] {
			continue
		}
		id := uniqueID(rec.Tag, objectID, subType, index, totals[subType])
		entry, ok := translations[id]
		if !ok {
			continue
		}

		current := DecodeText(subs[i].Data)
		if strings.TrimSpace(current) != strings.TrimSpace(entry.Original) {
			stats.Mismatches++
			log.Printf(i18n.I18nMsg.Esm.WarnTextMismatch, id, current, entry.Original)
			continue
		}

		encoded := EncodeText(entry.Translated)
		if bytes.Equal(encoded, subs[i].Data) {
			continue
		}
		subs[i].Data = encoded
		modified = true
		stats.Injected++
	}

	if modified {
		rec.Data = BuildPayload(subs)
	}
	return nil
}
