// Package align stores a multiple sequence alignment in tabular
// (row/column) form and keeps it honest under mutation.
//
// A Matrix holds rows of one concrete seq.Row family, all of equal
// length, optionally addressable by a unique string key per row. Two
// invariants hold after every public operation:
//
//   - homogeneity: a single concrete row type and a fixed row length
//     (it is impossible to have zero rows and a non-zero position count)
//   - key uniqueness: when keys are present there is a bijection between
//     row indexes and keys, and the key slice is exactly row-count long
//
// Mutations (Append, Reindex, Sort) are atomic: on any validation
// failure the matrix is left exactly as before the call. Keys are never
// mutable in place; the only way to change them is the Reindex path,
// and Keys returns a fresh copy on every read.
//
// Derived views reinterpret the row-major storage column-major without
// mutating it: Columns yields lazy, restartable column iteration,
// GapFrequencies folds gap counts along either axis, and Consensus
// builds the per-column plurality row.
//
// Concurrency: all operations are single-threaded by contract. The
// package takes no locks; callers own the discipline. In particular, do
// not mutate a Matrix while a ColumnIter obtained from it is still being
// consumed: the iterator reads live row storage by position, not a
// snapshot.
//
// Errors are package-level sentinels matched with errors.Is; no public
// operation panics on user input.
package align
