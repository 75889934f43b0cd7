// Package align: construction, append, and row-level accessors.
package align

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/alignmat/seq"
)

// New builds a Matrix by folding rows eagerly, failing fast on the first
// homogeneity violation. The first row establishes the concrete row type
// and the position count; every subsequent row is checked against both
// (ErrTypeMismatch, ErrLengthMismatch).
//
// At most one of WithKeyRule and WithKeys may be given (both:
// ErrConflictingKeyArguments). A rule is applied once per row to produce
// keys and remembered for Append; an explicit list must have one key per
// row (ErrKeyCountMismatch). Keys must be pairwise distinct
// (ErrDuplicateKeys).
//
// Zero rows is a valid, empty matrix; it is keyed only if an explicit
// (empty) key list was supplied.
func New(rows []seq.Row, opts ...Option) (*Matrix, error) {
	m := &Matrix{}
	for i, row := range rows {
		if err := m.checkRow(row); err != nil {
			return nil, fmt.Errorf("New: row %d: %w", i, err)
		}
		m.commitRow(row)
	}
	if err := m.Reindex(opts...); err != nil {
		return nil, err
	}

	return m, nil
}

// checkRow validates row against the established row type and position
// count without mutating the matrix. The first row of an empty matrix
// always passes (it bootstraps both).
func (m *Matrix) checkRow(row seq.Row) error {
	if row == nil {
		return ErrNilRow
	}
	if m.shape.Sequences == 0 {
		return nil
	}
	if rt := reflect.TypeOf(row); rt != m.rowType {
		return fmt.Errorf("type %v does not match %v: %w", rt, m.rowType, ErrTypeMismatch)
	}
	if row.Len() != m.shape.Positions {
		return fmt.Errorf("length %d does not match %d: %w",
			row.Len(), m.shape.Positions, ErrLengthMismatch)
	}

	return nil
}

// commitRow appends a row previously accepted by checkRow, bootstrapping
// the row type and position count from the first row.
func (m *Matrix) commitRow(row seq.Row) {
	if m.shape.Sequences == 0 {
		m.rowType = reflect.TypeOf(row)
		m.shape.Positions = row.Len()
	}
	m.rows = append(m.rows, row)
	m.shape.Sequences++
}

// Append adds one row at the end of the matrix, atomically: if any step
// fails, neither the row nor its key is added.
//
// Keying follows the matrix state. On an unkeyed matrix, supplying
// AppendKey or AppendRule is ErrKeyingMismatch. On a keyed matrix the key
// comes from exactly one of: AppendKey, AppendRule, or the cached rule
// from construction/Reindex; with none available the append fails with
// ErrKeyRequired, and a key duplicating an existing one fails with
// ErrDuplicateKeys. AppendKey and AppendRule together are
// ErrConflictingKeyArguments.
//
// Appending the first row to an empty matrix bootstraps the row type and
// position count, seeding its sole key in the same step when the matrix
// is a keyed empty one.
func (m *Matrix) Append(row seq.Row, opts ...AppendOption) error {
	o := gatherAppendOpts(opts...)
	if o.hasKey && o.hasRule {
		return ErrConflictingKeyArguments
	}

	keyed := m.HasKeys()
	if !keyed && (o.hasKey || o.hasRule) {
		return ErrKeyingMismatch
	}

	if err := m.checkRow(row); err != nil {
		return fmt.Errorf("Append: %w", err)
	}

	var key string
	if keyed {
		switch {
		case o.hasKey:
			key = o.key
		case o.hasRule:
			k, err := o.rule.resolve(row)
			if err != nil {
				return fmt.Errorf("Append: %w", err)
			}
			key = k
		case m.cachedRule != nil:
			k, err := m.cachedRule.resolve(row)
			if err != nil {
				return fmt.Errorf("Append: %w", err)
			}
			key = k
		default:
			return ErrKeyRequired
		}

		// linear duplicate scan; the key index has no lookup structure
		for _, existing := range m.keys {
			if existing == key {
				return fmt.Errorf("Append: duplicate key %q: %w", key, ErrDuplicateKeys)
			}
		}
	}

	m.commitRow(row)
	if keyed {
		m.keys = append(m.keys, key)
	}

	return nil
}

// Len returns the number of rows.
func (m *Matrix) Len() int { return m.shape.Sequences }

// Shape returns the (row count, position count) pair.
func (m *Matrix) Shape() Shape { return m.shape }

// RowType returns the concrete type shared by all rows, or nil while the
// matrix is empty.
func (m *Matrix) RowType() reflect.Type { return m.rowType }

// IsEmpty reports whether the matrix holds no characters: no rows, or
// rows of zero length.
func (m *Matrix) IsEmpty() bool { return m.shape.Positions == 0 }

// Row returns the row at index i.
func (m *Matrix) Row(i int) (seq.Row, error) {
	if i < 0 || i >= m.shape.Sequences {
		return nil, fmt.Errorf("row %d of %d: %w", i, m.shape.Sequences, ErrRowRange)
	}

	return m.rows[i], nil
}

// Rows returns the rows in order. The slice is a fresh copy; the rows
// themselves are the caller's own immutable values.
func (m *Matrix) Rows() []seq.Row {
	out := make([]seq.Row, len(m.rows))
	copy(out, m.rows)

	return out
}

// RowsReversed returns the rows in reverse order, as a fresh copy.
func (m *Matrix) RowsReversed() []seq.Row {
	out := make([]seq.Row, len(m.rows))
	for i, row := range m.rows {
		out[len(m.rows)-1-i] = row
	}

	return out
}

// Equal reports whether m and other hold equal rows (delegating row
// equality, metadata included, to seq.Row.Equal) and the same keying
// state with equal keys.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.shape != other.shape || m.rowType != other.rowType {
		return false
	}
	if m.HasKeys() != other.HasKeys() {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(other.rows[i]) {
			return false
		}
	}
	if m.HasKeys() {
		for i := range m.keys {
			if m.keys[i] != other.keys[i] {
				return false
			}
		}
	}

	return true
}

// SetMetadata attaches matrix-level metadata; storage is delegated, only
// the handle is kept.
func (m *Matrix) SetMetadata(md seq.Metadata) { m.meta = md }

// Metadata returns the matrix-level metadata handle (nil when absent).
func (m *Matrix) Metadata() seq.Metadata { return m.meta }
