package contacts

import (
	"bufio"
	"io"
)

// VCardRevision is the constant REV marker written into every record.
const VCardRevision = "20080424T195243Z"

const crlf = "\r\n"

// VCardEncoder writes vCard 2.1 records.
type VCardEncoder struct {
	w *bufio.Writer
}

// NewVCardEncoder returns an encoder writing to w.
func NewVCardEncoder(w io.Writer) *VCardEncoder {
	return &VCardEncoder{w: bufio.NewWriter(w)}
}

// Encode writes one record for c and flushes it. Values are written verbatim.
func (e *VCardEncoder) Encode(c Contact) error {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:2.1",
		"N:" + c.Surname + ";" + c.Name + ";;;",
		"FN:" + c.Name + " " + c.Surname,
		"TEL;VOICE:" + c.PhoneNumber,
		"REV:" + VCardRevision,
		"END:VCARD",
	}
	for _, l := range lines {
		if _, err := e.w.WriteString(l + crlf); err != nil {
			return err
		}
	}
	return e.w.Flush()
}
