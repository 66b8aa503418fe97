// Package contacts implements the contact book operations on top of the
// SQLite store: add, delete, list and vCard export.
package contacts

import "strings"

// Contact is one stored row. Fields are kept verbatim; two contacts are the
// same only when all three fields match exactly.
type Contact struct {
	Name        string
	Surname     string
	PhoneNumber string
}

// New builds a contact from the name/surname/phone triple.
func New(name, surname, phone string) Contact {
	return Contact{Name: name, Surname: surname, PhoneNumber: phone}
}

// FromFields builds a contact from exactly three values.
func FromFields(fields []string) (Contact, bool) {
	if len(fields) != 3 {
		return Contact{}, false
	}
	return New(fields[0], fields[1], fields[2]), true
}

// String renders the triple space-separated, as used in console messages.
func (c Contact) String() string {
	return strings.Join([]string{c.Name, c.Surname, c.PhoneNumber}, " ")
}

// Row returns the contact as table cells.
func (c Contact) Row() []string {
	return []string{c.Name, c.Surname, c.PhoneNumber}
}
