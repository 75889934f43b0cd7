// Package seq provides aligned sequence rows for the alignmat container.
//
// A Row is one aligned biological sequence: a fixed run of uppercase
// characters from a family alphabet (DNA, RNA, Protein, or Generic), plus
// optional per-row metadata. Rows are immutable after construction; the
// alignment container consumes them through the narrow Row capability
// interface and never inspects their internals.
//
// Gap characters ('-' and '.') represent alignment gaps, not residues.
// They are accepted by every family alphabet and reported by GapSet.
//
// Construction validates characters against the family alphabet:
//
//	d, err := seq.NewDNA("ACG-T", seq.WithMetadata(seq.Metadata{"id": "s1"}))
//	if err != nil {
//		// seq.ErrInvalidCharacter
//	}
//
// Derive builds a new row of the same family from raw characters; it is
// the hook the alignment container uses to materialize column views and
// consensus rows.
package seq
