package store

import (
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// errEmptyWriteSet rejects updates that carry no columns.
var errEmptyWriteSet = errors.New("empty write set")

// Kind classifies a store failure so repositories can map constraint
// violations to domain errors without parsing driver messages.
type Kind int

const (
	KindGeneric Kind = iota
	KindUnique
	KindForeignKey
)

// Error is the structured failure returned by every Client operation.
type Error struct {
	Op    string // "select", "insert", "update", "delete"
	Table string
	Kind  Kind
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Table, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsUnique reports whether err is a store-level uniqueness violation.
func IsUnique(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindUnique
}

// IsForeignKey reports whether err is a store-level foreign key violation.
func IsForeignKey(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindForeignKey
}

// wrapErr attaches operation context and classifies SQLite result codes.
func wrapErr(op, table string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Table: table, Kind: classify(err), Err: err}
}

func classify(err error) Kind {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return KindGeneric
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return KindUnique
	// SQLite enforces parent-side foreign key actions (RESTRICT) through
	// internal trigger programs, so a blocked parent delete reports
	// SQLITE_CONSTRAINT_TRIGGER rather than SQLITE_CONSTRAINT_FOREIGNKEY.
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, sqlite3.SQLITE_CONSTRAINT_TRIGGER:
		return KindForeignKey
	default:
		return KindGeneric
	}
}
