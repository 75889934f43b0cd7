// Package align: the key index and its single mutation path.
// Keys, once materialized, are read-only: Keys returns a fresh copy and
// every change flows through Reindex, which replaces the whole index
// atomically or not at all.
package align

import (
	"fmt"

	"github.com/katalvlaran/alignmat/seq"
)

// KeyRule is a tagged two-case key-derivation rule: either a function of
// the row or the name of a per-row metadata field. Build one with KeyFunc
// or KeyField; the zero value is invalid.
type KeyRule struct {
	fn    func(seq.Row) (string, error)
	field string
}

// KeyFunc wraps a one-argument function mapping a row to its key.
// Panics if fn is nil.
func KeyFunc(fn func(seq.Row) (string, error)) KeyRule {
	if fn == nil {
		panic(panicNilKeyFunc)
	}

	return KeyRule{fn: fn}
}

// KeyField names a per-row metadata field whose string value is the key.
// Panics if name is empty.
func KeyField(name string) KeyRule {
	if name == "" {
		panic(panicEmptyKeyName)
	}

	return KeyRule{field: name}
}

func (r KeyRule) isZero() bool { return r.fn == nil && r.field == "" }

// resolve produces the key for row. This single routine serves
// construction, Reindex, Append and Sort.
func (r KeyRule) resolve(row seq.Row) (string, error) {
	if r.fn != nil {
		key, err := r.fn(row)
		if err != nil {
			return "", fmt.Errorf("key function: %v: %w", err, ErrKeyUnresolved)
		}

		return key, nil
	}

	v, ok := row.Metadata(r.field)
	if !ok {
		return "", fmt.Errorf("no metadata field %q: %w", r.field, ErrKeyUnresolved)
	}
	key, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("metadata field %q holds %T: %w", r.field, v, ErrKeyType)
	}

	return key, nil
}

// HasKeys reports whether a key index is currently materialized.
func (m *Matrix) HasKeys() bool { return m.keys != nil }

// Keys returns the keys in row order as a fresh copy. Returns ErrNoKeysSet
// when the matrix is unkeyed; use Reindex (or SetKeys) to set keys.
func (m *Matrix) Keys() ([]string, error) {
	if !m.HasKeys() {
		return nil, ErrNoKeysSet
	}

	out := make([]string, len(m.keys))
	copy(out, m.keys)

	return out, nil
}

// CachedRule returns the key-derivation rule remembered from construction
// or Reindex. Returns ErrKeyRequired when none is cached.
func (m *Matrix) CachedRule() (KeyRule, error) {
	if m.cachedRule == nil {
		return KeyRule{}, ErrKeyRequired
	}

	return *m.cachedRule, nil
}

// Reindex recomputes the key index from scratch. Exactly one of
// WithKeyRule and WithKeys may be given; both yield
// ErrConflictingKeyArguments. With neither, keys are cleared and the
// matrix becomes unkeyed.
//
// With a rule, it is evaluated once per row in row order and remembered
// as the cached rule for Append. With an explicit list, its length must
// equal the current row count (ErrKeyCountMismatch).
//
// Either way, candidates are checked for duplicates; any duplicate set
// fails atomically with ErrDuplicateKeys (naming the offending values)
// and leaves the prior keys untouched. On success the new keys fully
// replace the old ones.
func (m *Matrix) Reindex(opts ...Option) error {
	o := gatherKeyOpts(opts...)
	if o.hasRule && o.hasKeys {
		return ErrConflictingKeyArguments
	}

	switch {
	case o.hasRule:
		candidates := make([]string, 0, len(m.rows))
		for i, row := range m.rows {
			key, err := o.rule.resolve(row)
			if err != nil {
				return fmt.Errorf("Reindex: row %d: %w", i, err)
			}
			candidates = append(candidates, key)
		}
		if dups := duplicates(candidates); len(dups) > 0 {
			return fmt.Errorf("Reindex: duplicate keys %q: %w", dups, ErrDuplicateKeys)
		}
		m.keys = candidates
		rule := o.rule
		m.cachedRule = &rule

	case o.hasKeys:
		if len(o.keys) != len(m.rows) {
			return fmt.Errorf("Reindex: %d keys for %d rows: %w",
				len(o.keys), len(m.rows), ErrKeyCountMismatch)
		}
		if dups := duplicates(o.keys); len(dups) > 0 {
			return fmt.Errorf("Reindex: duplicate keys %q: %w", dups, ErrDuplicateKeys)
		}
		// Own the storage: the caller keeps no handle into the index.
		candidates := make([]string, len(o.keys))
		copy(candidates, o.keys)
		m.keys = candidates

	default:
		m.keys = nil
	}

	return nil
}

// SetKeys replaces the key index with an explicit list; sugar for
// Reindex(WithKeys(keys)).
func (m *Matrix) SetKeys(keys []string) error {
	return m.Reindex(WithKeys(keys))
}

// ClearKeys removes the key index; sugar for Reindex with no arguments.
func (m *Matrix) ClearKeys() {
	// Reindex without arguments cannot fail.
	_ = m.Reindex()
}

// duplicates returns the distinct values occurring more than once, in
// first-occurrence order.
func duplicates(keys []string) []string {
	seen := make(map[string]int, len(keys))
	for _, k := range keys {
		seen[k]++
	}

	var dups []string
	reported := make(map[string]bool, len(seen))
	for _, k := range keys {
		if seen[k] > 1 && !reported[k] {
			dups = append(dups, k)
			reported[k] = true
		}
	}

	return dups
}
