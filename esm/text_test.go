package esm

import (
	"bytes"
	"testing"
)

func TestDecodeText(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		want string
	}{
		{
			name: "null terminated",
			data: []byte("Iron Helmet\x00"),
			want: "Iron Helmet",
		},
		{
			name: "bytes after null ignored",
			data: []byte("Iron\x00Helmet"),
			want: "Iron",
		},
		{
			name: "no null decodes in full",
			data: []byte("Iron Helmet"),
			want: "Iron Helmet",
		},
		{
			name: "windows-1252 accents",
			data: []byte{'C', 'a', 's', 'q', 'u', 'e', 0xE9, 0x00},
			want: "Casqueé",
		},
		{
			name: "smart quotes",
			data: []byte{0x93, 'h', 'i', 0x94, 0x00},
			want: "“hi”",
		},
		{
			name: "empty",
			data: nil,
			want: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DecodeText(tc.data); got != tc.want {
				t.Errorf("DecodeText mismatch: got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEncodeText(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want []byte
	}{
		{
			name: "plain ascii gets one null",
			text: "Iron Helmet",
			want: []byte("Iron Helmet\x00"),
		},
		{
			name: "accented characters map to codepage",
			text: "Casque de fer é",
			want: append([]byte("Casque de fer "), 0xE9, 0x00),
		},
		{
			name: "existing trailing null not doubled",
			text: "done\x00",
			want: []byte("done\x00"),
		},
		{
			name: "empty string is a lone null",
			text: "",
			want: []byte{0x00},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EncodeText(tc.text); !bytes.Equal(got, tc.want) {
				t.Errorf("EncodeText mismatch: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEncodeText_UnsupportedSubstituted(t *testing.T) {
	encoded := EncodeText("日本")
	if len(encoded) != 3 {
		t.Fatalf("expected 2 substituted bytes plus null, got %v", encoded)
	}
	if encoded[len(encoded)-1] != 0 {
		t.Errorf("missing trailing null: %v", encoded)
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, text := range []string{"Hello, traveler.", "Casque de fer", "naïve résumé"} {
		if got := DecodeText(EncodeText(text)); got != text {
			t.Errorf("round trip mismatch: got %q, want %q", got, text)
		}
	}
}
