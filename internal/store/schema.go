package store

import (
	"context"
)

// ContactsSchema creates the single contacts table. It deliberately has no
// key or uniqueness constraint; duplicates are rejected by the caller.
const ContactsSchema = `CREATE TABLE contacts (name TEXT, surname TEXT, phone_number TEXT)`

// InitSchema creates the contacts table. Callers run it only when the store
// file does not exist yet; running it twice fails with "table already exists".
func (a *Accessor) InitSchema(ctx context.Context) error {
	_, err := a.Perform(ctx, "create a database", ContactsSchema)
	return err
}
