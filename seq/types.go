// Package seq: the Row capability contract and per-row metadata.
// This file declares ONLY the interface consumed by the alignment
// container and the metadata bundle type; concrete families live in
// seq.go.
package seq

// Metadata stores arbitrary per-row (or per-position) annotations.
// Bundles are treated as immutable once attached to a row.
type Metadata map[string]any

// Row is the capability contract for one aligned sequence. The alignment
// container is generic over this interface, not over a concrete family
// hierarchy; any type implementing it can populate a matrix.
//
// All methods are read-only. At panics on an out-of-range position,
// matching slice indexing; public container accessors range-check first.
type Row interface {
	// Len returns the number of characters (aligned length).
	Len() int

	// At returns the character at position i. Panics if i is out of range.
	At(i int) byte

	// String returns the raw character string.
	String() string

	// Equal reports whether other is the same concrete family with the
	// same characters and equal metadata.
	Equal(other Row) bool

	// Metadata looks up a per-row annotation by name.
	Metadata(name string) (any, bool)

	// GapSet returns the characters that count as alignment gaps.
	GapSet() []byte

	// CountAny returns how many characters of the row belong to set.
	CountAny(set []byte) int

	// Derive builds a new row of the same family from chars, carrying md
	// as its metadata (nil for none). The characters are assumed to come
	// from same-family rows and are not re-validated.
	Derive(chars []byte, md Metadata) Row
}
