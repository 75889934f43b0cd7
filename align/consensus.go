// Package align: per-column plurality consensus.
package align

import "github.com/katalvlaran/alignmat/seq"

// Consensus returns the per-column plurality row: for each position, the
// most frequent character across rows, concatenated in position order
// into a new row of the matrix's row type. The result carries no
// metadata.
//
// Ties between equally frequent characters are broken arbitrarily; do not
// rely on any particular winner beyond membership in the maximal-count
// set. For an empty matrix the consensus is an empty seq.Generic row.
func (m *Matrix) Consensus() seq.Row {
	if m.shape.Sequences == 0 {
		empty, _ := seq.NewGeneric("")

		return empty
	}

	chars := make([]byte, m.shape.Positions)
	for i := 0; i < m.shape.Positions; i++ {
		var counts [256]int
		best, bestCount := byte(0), 0
		for _, row := range m.rows {
			c := row.At(i)
			counts[c]++
			if counts[c] > bestCount {
				best, bestCount = c, counts[c]
			}
		}
		chars[i] = best
	}

	return m.rows[0].Derive(chars, nil)
}
