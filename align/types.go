// Package align: domain types.
// This file declares the Matrix container, its Shape, and the Axis tokens
// used by GapFrequencies. Errors live in errors.go, functional options in
// options.go, per the package conventions.
package align

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/alignmat/seq"
)

// Shape is the pair (row count, position count) of a Matrix.
type Shape struct {
	// Sequences is the number of rows.
	Sequences int

	// Positions is the aligned length shared by all rows.
	Positions int
}

// Axis selects the fold direction for GapFrequencies.
type Axis int

const (
	// AxisPosition folds over sequences: one value per position.
	AxisPosition Axis = iota

	// AxisSequence folds over positions: one value per row.
	AxisSequence
)

// String returns the axis token name.
func (a Axis) String() string {
	switch a {
	case AxisPosition:
		return "position"
	case AxisSequence:
		return "sequence"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Matrix is a row-homogeneous 2D container over seq.Row values with an
// optional unique-key index. The zero value is not usable; construct with
// New or FromDict.
//
// Storage is row-major. keys is nil exactly when the matrix is unkeyed
// (a keyed empty matrix holds a non-nil empty slice). cachedRule is the
// key-derivation rule remembered from construction or Reindex, consulted
// by Append when no per-row key is supplied.
type Matrix struct {
	rows    []seq.Row
	rowType reflect.Type // nil while Sequences == 0
	shape   Shape

	keys       []string
	cachedRule *KeyRule

	meta  seq.Metadata
	table PositionTable // nil when no position table is attached
}
