package contacts

import (
	"context"
	"fmt"
	"os"

	"contactbook/internal/logging"
	"contactbook/internal/store"

	"go.uber.org/zap"
)

const (
	insertQuery = "INSERT INTO contacts VALUES (?, ?, ?)"
	searchQuery = "SELECT * FROM contacts WHERE name = ? AND surname = ? AND phone_number = ?"
	deleteQuery = "DELETE FROM contacts WHERE name = ? AND surname = ? AND phone_number = ?"
	listQuery   = "SELECT name, surname, phone_number FROM contacts"
)

// Accessor is the subset of the store used by Book.
type Accessor interface {
	Perform(ctx context.Context, action, query string, args ...any) (store.Result, error)
	Fetch(ctx context.Context, action, query string, args ...any) ([][]string, error)
}

// Book runs contact operations against a store accessor.
type Book struct {
	store     Accessor
	logger    *zap.Logger
	exportLog *zap.Logger
}

// NewBook creates a Book over the given accessor.
func NewBook(a Accessor, logger *zap.Logger) *Book {
	return &Book{
		store:     a,
		logger:    logging.Named(logger, logging.CategoryBook),
		exportLog: logging.Named(logger, logging.CategoryExport),
	}
}

// Add inserts c unless an identical triple is already stored.
// The lookup and insert are separate calls and not atomic.
func (b *Book) Add(ctx context.Context, c Contact) Result {
	found, err := b.store.Perform(ctx, "Looking for contact", searchQuery, c.Name, c.Surname, c.PhoneNumber)
	if err != nil {
		return storeFailure(c, err)
	}
	if found.RowsReturned > 0 {
		b.logger.Debug("duplicate contact", zap.Stringer("contact", c), zap.Int("matches", found.RowsReturned))
		return Result{Outcome: OutcomeExists, Contact: c}
	}

	if _, err := b.store.Perform(ctx, "Adding a record to sql table", insertQuery, c.Name, c.Surname, c.PhoneNumber); err != nil {
		return storeFailure(c, err)
	}
	b.logger.Info("contact added", zap.Stringer("contact", c))
	return Result{Outcome: OutcomeAdded, Contact: c, Count: 1}
}

// Delete removes every row matching c exactly.
func (b *Book) Delete(ctx context.Context, c Contact) Result {
	res, err := b.store.Perform(ctx, "Deleting a record", deleteQuery, c.Name, c.Surname, c.PhoneNumber)
	if err != nil {
		return storeFailure(c, err)
	}
	if res.RowsAffected == 0 {
		return Result{Outcome: OutcomeNotFound, Contact: c}
	}
	b.logger.Info("contact deleted", zap.Stringer("contact", c), zap.Int64("rows", res.RowsAffected))
	return Result{Outcome: OutcomeDeleted, Contact: c, Count: int(res.RowsAffected)}
}

// List returns all contacts in store order.
func (b *Book) List(ctx context.Context) ([]Contact, Result) {
	rows, err := b.store.Fetch(ctx, "Listing all contacts", listQuery)
	if err != nil {
		return nil, storeFailure(Contact{}, err)
	}
	out := make([]Contact, 0, len(rows))
	for _, row := range rows {
		if c, ok := FromFields(row); ok {
			out = append(out, c)
		}
	}
	return out, Result{Outcome: OutcomeListed, Count: len(out)}
}

// Export appends one vCard per stored contact to path. Existing content is
// kept, so exporting twice doubles the records in the file.
func (b *Book) Export(ctx context.Context, path string) Result {
	list, res := b.List(ctx)
	if res.Failed() {
		res.Path = path
		return res
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return Result{Outcome: OutcomeFileError, Path: path, Err: fmt.Errorf("export to %s failed: %w", path, err)}
	}

	enc := NewVCardEncoder(f)
	for _, c := range list {
		if err := enc.Encode(c); err != nil {
			f.Close()
			return Result{Outcome: OutcomeFileError, Path: path, Err: fmt.Errorf("export to %s failed: %w", path, err)}
		}
	}
	if err := f.Close(); err != nil {
		return Result{Outcome: OutcomeFileError, Path: path, Err: fmt.Errorf("export to %s failed: %w", path, err)}
	}

	b.exportLog.Info("vcards exported",
		zap.String("path", path), zap.Int("count", len(list)))
	return Result{Outcome: OutcomeExported, Path: path, Count: len(list)}
}
