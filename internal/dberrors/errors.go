// Package dberrors defines the sentinel error kinds shared across the
// storage, plan, and engine layers. Callers distinguish failures with
// errors.Is rather than by parsing message text.
package dberrors

import "errors"

var (
	// ErrIOError wraps an underlying filesystem failure.
	ErrIOError = errors.New("dberrors: io error")

	// ErrCorruptedStorage signals a file length that is not a multiple of
	// the page size, or slot pointers that are internally inconsistent.
	ErrCorruptedStorage = errors.New("dberrors: corrupted storage")

	// ErrCodecError signals a malformed encoding: short read, bad UTF-8,
	// overflow, or a text value over 255 bytes.
	ErrCodecError = errors.New("dberrors: codec error")

	// ErrInsufficientSpace signals a record that does not fit in the
	// remaining capacity of a page.
	ErrInsufficientSpace = errors.New("dberrors: insufficient page space")

	// ErrSchemaMismatch signals a row whose arity does not match its schema.
	ErrSchemaMismatch = errors.New("dberrors: schema mismatch")

	// ErrUnknownColumn signals a column name with no match in the input schema.
	ErrUnknownColumn = errors.New("dberrors: unknown column")

	// ErrTableAlreadyExists signals a CREATE TABLE whose destination path
	// already exists.
	ErrTableAlreadyExists = errors.New("dberrors: table already exists")

	// ErrMalformedStatement signals an Insert statement that violates the
	// exactly-one-of(values, from_query) constraint, or another structurally
	// invalid statement.
	ErrMalformedStatement = errors.New("dberrors: malformed statement")

	// ErrEndOfStream is returned by Node.Next when no more rows remain.
	// It is not a failure; callers check errors.Is(err, ErrEndOfStream) to
	// detect normal exhaustion.
	ErrEndOfStream = errors.New("dberrors: end of stream")
)
