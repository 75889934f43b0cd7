// Package align: the position (column) metadata collaborator contract.
// Storage of tabular side-metadata is external to this core; the matrix
// only validates length against its position count and projects one
// bundle per derived column.
package align

import (
	"fmt"

	"github.com/katalvlaran/alignmat/seq"
)

// PositionTable is the capability contract for column-level metadata:
// one annotation bundle per alignment position.
type PositionTable interface {
	// Len returns the number of positions covered by the table.
	Len() int

	// Project extracts the annotation bundle for position i, as a mapping
	// ready to attach to a derived column. Implementations should return
	// an owned bundle; the matrix attaches it as-is.
	Project(i int) seq.Metadata
}

// Table is a minimal PositionTable backed by a slice of bundles, for
// callers without an external metadata store.
type Table []seq.Metadata

// Len returns the number of positions covered by the table.
func (t Table) Len() int { return len(t) }

// Project returns a copy of the bundle at position i, so attached column
// metadata never aliases the table's storage.
func (t Table) Project(i int) seq.Metadata {
	src := t[i]
	if src == nil {
		return nil
	}

	out := make(seq.Metadata, len(src))
	for k, v := range src {
		out[k] = v
	}

	return out
}

// AttachPositionTable attaches column-level metadata. The table length
// must equal the position count (ErrTableLength). Derived columns then
// carry the corresponding bundle; see Columns.
func (m *Matrix) AttachPositionTable(t PositionTable) error {
	if t != nil && t.Len() != m.shape.Positions {
		return fmt.Errorf("table length %d for %d positions: %w",
			t.Len(), m.shape.Positions, ErrTableLength)
	}
	m.table = t

	return nil
}

// PositionTable returns the attached column-level metadata table, if any.
func (m *Matrix) PositionTable() (PositionTable, bool) {
	return m.table, m.table != nil
}
