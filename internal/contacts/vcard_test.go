package contacts

import (
	"bytes"
	"testing"
)

func TestVCardEncoder_Encode(t *testing.T) {
	var buf bytes.Buffer
	enc := NewVCardEncoder(&buf)

	if err := enc.Encode(New("Jane", "Doe", "+1000")); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := "BEGIN:VCARD\r\n" +
		"VERSION:2.1\r\n" +
		"N:Doe;Jane;;;\r\n" +
		"FN:Jane Doe\r\n" +
		"TEL;VOICE:+1000\r\n" +
		"REV:20080424T195243Z\r\n" +
		"END:VCARD\r\n"
	if got := buf.String(); got != want {
		t.Errorf("Encode() =\n%q\nwant\n%q", got, want)
	}
}

func TestVCardEncoder_MultipleRecords(t *testing.T) {
	var buf bytes.Buffer
	enc := NewVCardEncoder(&buf)

	for _, c := range []Contact{New("A", "B", "1"), New("C", "D", "2")} {
		if err := enc.Encode(c); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}
	if n := bytes.Count(buf.Bytes(), []byte("BEGIN:VCARD")); n != 2 {
		t.Errorf("expected 2 records, got %d", n)
	}
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return 0, bytes.ErrTooLarge }

func TestVCardEncoder_WriteError(t *testing.T) {
	enc := NewVCardEncoder(shortWriter{})
	if err := enc.Encode(New("A", "B", "1")); err == nil {
		t.Error("expected error from failing writer")
	}
}
