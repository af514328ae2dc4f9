package csvio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/morrowtools/esm-translator-go/esm"
)

func TestWriteReadRoundTrip(t *testing.T) {
	rows := []esm.Row{
		{
			UniqueID:      "BOOK|book_ironhelm|FNAM",
			RecordType:    "BOOK",
			SubRecordType: "FNAM",
			OriginalText:  "Iron Helmet",
		},
		{
			UniqueID:      "BOOK|book_ironhelm|TEXT",
			RecordType:    "BOOK",
			SubRecordType: "TEXT",
			OriginalText:  "Line one,\nline \"two\".",
		},
		{
			UniqueID:       "DIAL|greeting|NAME",
			RecordType:     "DIAL",
			SubRecordType:  "NAME",
			OriginalText:   "Hello, traveler.",
			TranslatedText: "Salut, voyageur.",
		},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	got, err := ReadRows(&buf)
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("row count mismatch: got %d, want %d", len(got), len(rows))
	}
	for i := range rows {
		if got[i] != rows[i] {
			t.Errorf("row %d mismatch:\n got  %+v\n want %+v", i, got[i], rows[i])
		}
	}
}

func TestWriter_EmptyExtractionStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	want := strings.Join(Header, ",") + "\n"
	if buf.String() != want {
		t.Errorf("output mismatch: got %q, want %q", buf.String(), want)
	}

	rows, err := ReadRows(&buf)
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestReadRows_StripsBOM(t *testing.T) {
	input := "\xEF\xBB\xBFunique_id,record_type,subrecord_type,original_text,translated_text\n" +
		"BOOK|b|FNAM,BOOK,FNAM,Old,New\n"

	rows, err := ReadRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if len(rows) != 1 || rows[0].UniqueID != "BOOK|b|FNAM" {
		t.Errorf("unexpected rows: %+v", rows)
	}
}

func TestReadRows_ColumnOrderIndependent(t *testing.T) {
	input := "translated_text,unique_id,original_text\n" +
		"Neu,BOOK|b|FNAM,Old\n"

	rows, err := ReadRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("row count mismatch: got %d, want 1", len(rows))
	}
	row := rows[0]
	if row.UniqueID != "BOOK|b|FNAM" || row.OriginalText != "Old" || row.TranslatedText != "Neu" {
		t.Errorf("unexpected row: %+v", row)
	}
}

func TestReadRows_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"missing unique_id column", "record_type,original_text,translated_text\nBOOK,Old,New\n"},
		{"missing translated_text column", "unique_id,original_text\nBOOK|b|FNAM,Old\n"},
		{"ragged row", "unique_id,original_text,translated_text\nBOOK|b|FNAM,Old\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadRows(strings.NewReader(tc.input)); err == nil {
				t.Errorf("expected error, got nil")
			}
		})
	}
}

func TestLoadTranslations(t *testing.T) {
	input := "unique_id,record_type,subrecord_type,original_text,translated_text\n" +
		"BOOK|b|FNAM,BOOK,FNAM,Iron Helmet,Casque de fer\n" +
		"BOOK|b|TEXT,BOOK,TEXT,Some text,\n" +
		"MISC|m|FNAM,MISC,FNAM,Coin,   \n" +
		"NPC_|n|FNAM,NPC_,FNAM,Guard,Garde\n"

	translations, err := LoadTranslations(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadTranslations failed: %v", err)
	}
	if len(translations) != 2 {
		t.Fatalf("entry count mismatch: got %d, want 2", len(translations))
	}

	entry, ok := translations["BOOK|b|FNAM"]
	if !ok {
		t.Fatal("missing BOOK|b|FNAM entry")
	}
	if entry.Original != "Iron Helmet" || entry.Translated != "Casque de fer" {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if _, ok := translations["BOOK|b|TEXT"]; ok {
		t.Error("empty translation was kept")
	}
	if _, ok := translations["MISC|m|FNAM"]; ok {
		t.Error("whitespace-only translation was kept")
	}
}
