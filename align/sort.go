// Package align: in-place stable reordering of rows and keys.
package align

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/alignmat/seq"
)

// Sort reorders the rows in place by a per-row sort key, keeping the key
// index (when present) in lockstep by index.
//
// Without SortBy, the sort keys are the matrix's materialized keys;
// sorting an unkeyed matrix then fails with ErrNoKeysSet. With SortBy,
// the rule is resolved once per row to produce independent sort keys; the
// existing key index is permuted alongside but never overwritten.
//
// The sort is stable ascending. Reverse performs the stable ascending
// sort and then physically reverses the result, so rows with equal sort
// keys come out in reverse of their original relative order (the
// stable-sort-then-reverse policy, not a stable descending sort).
func (m *Matrix) Sort(opts ...SortOption) error {
	o := gatherSortOpts(opts...)

	var sortKeys []string
	if o.hasRule {
		sortKeys = make([]string, 0, len(m.rows))
		for i, row := range m.rows {
			key, err := o.rule.resolve(row)
			if err != nil {
				return fmt.Errorf("Sort: row %d: %w", i, err)
			}
			sortKeys = append(sortKeys, key)
		}
	} else {
		if !m.HasKeys() {
			return ErrNoKeysSet
		}
		sortKeys = make([]string, len(m.keys))
		copy(sortKeys, m.keys)
	}

	n := len(m.rows)
	if n < 2 {
		return nil
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return sortKeys[perm[a]] < sortKeys[perm[b]]
	})
	if o.reverse {
		for l, r := 0, n-1; l < r; l, r = l+1, r-1 {
			perm[l], perm[r] = perm[r], perm[l]
		}
	}

	m.applyPermutation(perm)

	return nil
}

// applyPermutation replaces row and key storage with the reordered
// sequences in one logical step. A permutation preserves uniqueness and
// index alignment trivially.
func (m *Matrix) applyPermutation(perm []int) {
	rows := make([]seq.Row, len(m.rows))
	for i, p := range perm {
		rows[i] = m.rows[p]
	}
	m.rows = rows

	if m.HasKeys() {
		keys := make([]string, len(m.keys))
		for i, p := range perm {
			keys[i] = m.keys[p]
		}
		m.keys = keys
	}
}
