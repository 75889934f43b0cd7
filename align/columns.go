// Package align: column-major views over the row-major storage.
// Column derivation never mutates the matrix; every iterator is an
// independent, restartable pass with an explicit captured position index
// (no late-binding closure over a shared counter).
package align

import (
	"fmt"
	"math"

	"github.com/katalvlaran/alignmat/seq"
)

// ColumnIter is a lazy, finite, one-shot sequence of column views. Each
// column is materialized eagerly on Next; nothing is deferred further, so
// advancing never blocks.
//
// The iterator reads live row storage by position, not a snapshot:
// mutating the matrix while an iterator is in flight is undefined
// behavior and the caller's responsibility to avoid.
type ColumnIter struct {
	rows      []seq.Row
	table     PositionTable
	pos       int
	step      int
	remaining int
}

// Columns returns a fresh column iterator. Every call builds an
// independent sequence, so multiple iterations over the same matrix do
// not interfere and the matrix is never mutated by iteration.
// ColumnReverse iterates positions from last to first.
func (m *Matrix) Columns(opts ...ColumnOption) *ColumnIter {
	o := gatherColumnOpts(opts...)

	it := &ColumnIter{
		rows:      m.rows,
		table:     m.table,
		pos:       0,
		step:      1,
		remaining: m.shape.Positions,
	}
	if o.reverse {
		it.pos = m.shape.Positions - 1
		it.step = -1
	}

	return it
}

// Next materializes and returns the next column view, or (nil, false)
// once the sequence is exhausted.
func (it *ColumnIter) Next() (seq.Row, bool) {
	if it.remaining == 0 {
		return nil, false
	}

	col := buildColumn(it.rows, it.pos, it.table)
	it.pos += it.step
	it.remaining--

	return col, true
}

// Column materializes the single column view at position i.
func (m *Matrix) Column(i int) (seq.Row, error) {
	if i < 0 || i >= m.shape.Positions {
		return nil, fmt.Errorf("column %d of %d: %w", i, m.shape.Positions, ErrPositionRange)
	}

	return buildColumn(m.rows, i, m.table), nil
}

// buildColumn concatenates the i-th character of every row into a
// row-like value of the same family, attaching the i-th annotation bundle
// when a position table is present. rows must be non-empty; callers
// guarantee i is in range (positions > 0 implies at least one row).
func buildColumn(rows []seq.Row, i int, table PositionTable) seq.Row {
	chars := make([]byte, len(rows))
	for r, row := range rows {
		chars[r] = row.At(i)
	}

	var md seq.Metadata
	if table != nil {
		md = table.Project(i)
	}

	return rows[0].Derive(chars, md)
}

// GapFrequencies computes, per element along axis, the count (or, with
// relative, the proportion) of gap-class characters.
//
// AxisPosition yields one value per position by materializing each column
// and counting its gap characters; the divisor for relative is the row
// count. AxisSequence yields one value per row from the row's own gap
// count, without materializing columns; the divisor is the position
// count. A zero divisor under relative yields NaN entries, not an error.
// Any other axis token fails with ErrInvalidAxis.
func (m *Matrix) GapFrequencies(axis Axis, relative bool) ([]float64, error) {
	switch axis {
	case AxisPosition:
		out := make([]float64, 0, m.shape.Positions)
		it := m.Columns()
		for col, ok := it.Next(); ok; col, ok = it.Next() {
			f := float64(col.CountAny(col.GapSet()))
			if relative {
				f = ratio(f, m.shape.Sequences)
			}
			out = append(out, f)
		}

		return out, nil

	case AxisSequence:
		out := make([]float64, 0, m.shape.Sequences)
		for _, row := range m.rows {
			f := float64(row.CountAny(row.GapSet()))
			if relative {
				f = ratio(f, m.shape.Positions)
			}
			out = append(out, f)
		}

		return out, nil

	default:
		return nil, fmt.Errorf("axis %v: %w", axis, ErrInvalidAxis)
	}
}

// ratio divides count by n, mapping a zero divisor to NaN.
func ratio(count float64, n int) float64 {
	if n == 0 {
		return math.NaN()
	}

	return count / float64(n)
}
