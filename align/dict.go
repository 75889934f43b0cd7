// Package align: dictionary round-trips for keyed matrices.
package align

import "github.com/katalvlaran/alignmat/seq"

// ToDict maps each key to its row. Fails with ErrNoKeysSet on an unkeyed
// matrix. The map holds the same row values the matrix does; rows are
// immutable, so sharing is safe.
func (m *Matrix) ToDict() (map[string]seq.Row, error) {
	if !m.HasKeys() {
		return nil, ErrNoKeysSet
	}

	out := make(map[string]seq.Row, len(m.rows))
	for i, key := range m.keys {
		out[key] = m.rows[i]
	}

	return out, nil
}

// FromDict builds a keyed matrix from a key→row map. Map iteration order
// is arbitrary, so the resulting row order is too; sort both sides by the
// same rule to compare matrices built from the same dictionary.
func FromDict(d map[string]seq.Row) (*Matrix, error) {
	rows := make([]seq.Row, 0, len(d))
	keys := make([]string, 0, len(d))
	for key, row := range d {
		keys = append(keys, key)
		rows = append(rows, row)
	}

	return New(rows, WithKeys(keys))
}
