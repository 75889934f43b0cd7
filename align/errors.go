// Package align: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations
// return these sentinels (possibly wrapped with fmt.Errorf("ctx: %w"))
// and tests check them via errors.Is. No operation panics on
// user-triggered conditions; panics are reserved for programmer errors
// in option constructors.
package align

import "errors"

var (
	// ErrNilRow indicates a nil seq.Row was supplied.
	ErrNilRow = errors.New("align: nil row")

	// ErrTypeMismatch indicates a row whose concrete type differs from the
	// established row type of the matrix.
	ErrTypeMismatch = errors.New("align: row type mismatch")

	// ErrLengthMismatch indicates a row whose length differs from the
	// established position count of the matrix.
	ErrLengthMismatch = errors.New("align: row length mismatch")

	// ErrConflictingKeyArguments indicates that a key-derivation rule and
	// an explicit key (or key list) were both supplied; they are mutually
	// exclusive.
	ErrConflictingKeyArguments = errors.New("align: key rule and explicit keys are mutually exclusive")

	// ErrKeyCountMismatch indicates an explicit key list whose length does
	// not equal the row count.
	ErrKeyCountMismatch = errors.New("align: key count does not match row count")

	// ErrDuplicateKeys indicates a uniqueness violation; the wrapping
	// message names the offending key values.
	ErrDuplicateKeys = errors.New("align: keys must be unique")

	// ErrNoKeysSet indicates keys were accessed (or required) while the
	// matrix is unkeyed. Use Reindex to set them.
	ErrNoKeysSet = errors.New("align: keys are not set")

	// ErrKeyRequired indicates an append on a keyed matrix without an
	// explicit key, a rule, or a cached rule to derive one.
	ErrKeyRequired = errors.New("align: key required but none provided and no cached rule exists")

	// ErrKeyingMismatch indicates a per-row key (or rule) supplied to an
	// unkeyed matrix; the matrix must already be keyed to accept one.
	ErrKeyingMismatch = errors.New("align: key provided but matrix has no keys")

	// ErrKeyUnresolved indicates a field rule that found no metadata entry
	// of that name on a row.
	ErrKeyUnresolved = errors.New("align: key rule unresolved for row")

	// ErrKeyType indicates a key rule that resolved to a non-string value;
	// keys are never silently coerced.
	ErrKeyType = errors.New("align: key is not a string")

	// ErrInvalidAxis indicates an unrecognized Axis token.
	ErrInvalidAxis = errors.New("align: invalid axis")

	// ErrRowRange indicates a row index outside [0, Len).
	ErrRowRange = errors.New("align: row index out of range")

	// ErrPositionRange indicates a position index outside [0, Positions).
	ErrPositionRange = errors.New("align: position index out of range")

	// ErrTableLength indicates a position table whose length does not
	// equal the position count of the matrix.
	ErrTableLength = errors.New("align: position table length does not match position count")
)
