// Shared fixtures for the align package tests.
package align_test

import (
	"testing"

	"github.com/katalvlaran/alignmat/seq"
	"github.com/stretchr/testify/require"
)

// dna builds a DNA row or fails the test.
func dna(t *testing.T, s string, opts ...seq.Option) seq.DNA {
	t.Helper()
	d, err := seq.NewDNA(s, opts...)
	require.NoError(t, err, "fixture DNA %q must construct", s)

	return d
}

// rna builds an RNA row or fails the test.
func rna(t *testing.T, s string) seq.RNA {
	t.Helper()
	r, err := seq.NewRNA(s)
	require.NoError(t, err, "fixture RNA %q must construct", s)

	return r
}

// dnaRows builds a slice of DNA rows from raw strings.
func dnaRows(t *testing.T, ss ...string) []seq.Row {
	t.Helper()
	rows := make([]seq.Row, len(ss))
	for i, s := range ss {
		rows[i] = dna(t, s)
	}

	return rows
}

// idRow builds a DNA row carrying an "id" metadata field.
func idRow(t *testing.T, s, id string) seq.DNA {
	t.Helper()

	return dna(t, s, seq.WithMetadata(seq.Metadata{"id": id}))
}
