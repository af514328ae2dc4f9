package esm

import (
	"bytes"
	"reflect"
	"testing"
)

// rowCollector is an in-memory RowWriter for tests.
type rowCollector struct {
	rows []Row
}

func (c *rowCollector) Write(row Row) error {
	c.rows = append(c.rows, row)
	return nil
}

// bookRecord is a minimal BOOK record with an identifier and a display
// name, reused across extractor and injector tests.
func bookRecord() []byte {
	payload := append(buildSub("NAME", []byte("book_ironhelm\x00")), buildSub("FNAM", []byte("Iron Helmet\x00"))...)
	return buildRecord("BOOK", [8]byte{}, payload)
}

func extractAll(t *testing.T, container []byte, filter map[string]bool) []Row {
	t.Helper()
	var collected rowCollector
	if _, err := Extract(bytes.NewReader(container), &collected, filter, nil); err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	return collected.rows
}

func TestExtract_SingleString(t *testing.T) {
	rows := extractAll(t, buildContainer(bookRecord()), nil)

	want := []Row{{
		UniqueID:      "BOOK|book_ironhelm|FNAM",
		RecordType:    "BOOK",
		SubRecordType: "FNAM",
		OriginalText:  "Iron Helmet",
	}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows mismatch:\ngot  %+v\nwant %+v", rows, want)
	}
}

func TestExtract_OccurrenceSuffix(t *testing.T) {
	// Two FNAM occurrences get _0/_1 in file order; the single NNAM in a
	// different record stays unsuffixed.
	doubled := append(buildSub("NAME", []byte("dup\x00")), buildSub("FNAM", []byte("First Name\x00"))...)
	doubled = append(doubled, buildSub("FNAM", []byte("Second Name\x00"))...)
	single := append(buildSub("NAME", []byte("list_a\x00")), buildSub("NNAM", []byte("Leveled One\x00"))...)

	container := buildContainer(
		buildRecord("CREA", [8]byte{}, doubled),
		buildRecord("LEVC", [8]byte{}, single),
	)
	rows := extractAll(t, container, nil)

	wantIDs := []string{"CREA|dup|FNAM_0", "CREA|dup|FNAM_1", "LEVC|list_a|NNAM"}
	if len(rows) != len(wantIDs) {
		t.Fatalf("row count mismatch: got %d, want %d", len(rows), len(wantIDs))
	}
	for i, id := range wantIDs {
		if rows[i].UniqueID != id {
			t.Errorf("row %d id mismatch: got %q, want %q", i, rows[i].UniqueID, id)
		}
	}
	if rows[0].OriginalText != "First Name" || rows[1].OriginalText != "Second Name" {
		t.Errorf("occurrence order mismatch: %+v", rows[:2])
	}
}

func TestExtract_TypeFilter(t *testing.T) {
	gmst := append(buildSub("NAME", []byte("sVar\x00")), buildSub("STRV", []byte("Some setting text\x00"))...)
	container := buildContainer(bookRecord(), buildRecord("GMST", [8]byte{}, gmst))

	rows := extractAll(t, container, map[string]bool{"GMST": true})
	if len(rows) != 1 || rows[0].RecordType != "GMST" {
		t.Fatalf("filter not applied: %+v", rows)
	}
}

func TestExtract_SkipsUntranslatable(t *testing.T) {
	payload := append(buildSub("NAME", []byte("misc_key_01\x00")), buildSub("FNAM", []byte("42.5\x00"))...)
	scpt := buildSub("NAME", []byte("begin someScript\nend\n\x00"))

	container := buildContainer(
		buildRecord("MISC", [8]byte{}, payload),
		// SSCR exports NAME, but the payload is script source.
		buildRecord("SSCR", [8]byte{}, scpt),
		// Record type outside the table is skipped entirely.
		buildRecord("CELL", [8]byte{}, buildSub("FNAM", []byte("Balmora\x00"))),
	)

	rows := extractAll(t, container, nil)
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %+v", rows)
	}
}

func TestExtract_IdentifierStability(t *testing.T) {
	container := buildContainer(bookRecord(), bookRecord())

	first := extractAll(t, container, nil)
	second := extractAll(t, container, nil)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("extraction is not reproducible:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestExtract_Stats(t *testing.T) {
	container := buildContainer(bookRecord(), buildRecord("CELL", [8]byte{}, nil))

	var collected rowCollector
	stats, err := Extract(bytes.NewReader(container), &collected, nil, nil)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if stats.Records != 2 {
		t.Errorf("Records = %d, want 2", stats.Records)
	}
	if stats.Strings != 1 {
		t.Errorf("Strings = %d, want 1", stats.Strings)
	}
}
