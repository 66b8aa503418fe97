package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"contactbook/internal/config"
	"contactbook/internal/logging"

	"go.uber.org/zap"
)

// Result describes what a single statement did.
// A failed call returns the zero Result.
type Result struct {
	RowsAffected int64
	RowsReturned int
}

// Error is a store-level failure tagged with the action that was attempted.
type Error struct {
	Action string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Action, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsStoreError reports whether err came from the accessor.
func IsStoreError(err error) bool {
	var se *Error
	return errors.As(err, &se)
}

// Accessor opens a fresh connection to the SQLite file for every call,
// runs one statement in a transaction and closes the connection again.
// It holds no connection state between calls.
type Accessor struct {
	path   string
	driver string
	logger *zap.Logger
}

// NewAccessor creates an accessor for the configured store file.
func NewAccessor(cfg config.StoreConfig, logger *zap.Logger) *Accessor {
	driver := cfg.Driver
	if driver == "" {
		driver = config.DriverMattn
	}
	return &Accessor{
		path:   cfg.Path,
		driver: driver,
		logger: logging.Named(logger, logging.CategoryStore),
	}
}

// Path returns the database file path.
func (a *Accessor) Path() string {
	return a.path
}

// Exists reports whether the store file is already on disk.
func (a *Accessor) Exists() bool {
	info, err := os.Stat(a.path)
	return err == nil && !info.IsDir()
}

// Perform executes query with args and reports rows affected and rows
// returned. Rows affected is read from changes() on the same connection,
// so it reflects this statement only.
func (a *Accessor) Perform(ctx context.Context, action, query string, args ...any) (Result, error) {
	var res Result
	err := a.withTx(ctx, action, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		n := 0
		for rows.Next() {
			n++
		}
		if err := rows.Close(); err != nil {
			return err
		}
		if err := rows.Err(); err != nil {
			return err
		}

		var changed int64
		if err := tx.QueryRowContext(ctx, "SELECT changes()").Scan(&changed); err != nil {
			return err
		}
		res = Result{RowsAffected: changed, RowsReturned: n}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	a.logger.Debug("statement performed",
		zap.String("action", action),
		zap.Int64("rows_affected", res.RowsAffected),
		zap.Int("rows_returned", res.RowsReturned))
	return res, nil
}

// Fetch runs a SELECT and returns every row as text columns.
func (a *Accessor) Fetch(ctx context.Context, action, query string, args ...any) ([][]string, error) {
	var out [][]string
	err := a.withTx(ctx, action, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		cols, err := rows.Columns()
		if err != nil {
			return err
		}
		for rows.Next() {
			vals := make([]sql.NullString, len(cols))
			ptrs := make([]any, len(cols))
			for i := range vals {
				ptrs[i] = &vals[i]
			}
			if err := rows.Scan(ptrs...); err != nil {
				return err
			}
			row := make([]string, len(cols))
			for i, v := range vals {
				row[i] = v.String
			}
			out = append(out, row)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	a.logger.Debug("rows fetched", zap.String("action", action), zap.Int("rows", len(out)))
	return out, nil
}

// withTx owns the connection lifecycle: open, begin, fn, commit, close.
// The connection is closed on every path.
func (a *Accessor) withTx(ctx context.Context, action string, fn func(*sql.Tx) error) error {
	timer := logging.StartTimer(a.logger, action)
	defer timer.Stop()

	db, err := sql.Open(a.driver, a.path)
	if err != nil {
		return a.fail(action, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	defer func() {
		if cerr := db.Close(); cerr != nil {
			a.logger.Warn("failed to close store connection", zap.String("action", action), zap.Error(cerr))
		}
	}()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return a.fail(action, err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return a.fail(action, err)
	}
	if err := tx.Commit(); err != nil {
		return a.fail(action, err)
	}
	return nil
}

func (a *Accessor) fail(action string, err error) error {
	a.logger.Error("store call failed",
		zap.String("action", action),
		zap.String("path", a.path),
		zap.Error(err))
	return &Error{Action: action, Err: err}
}
