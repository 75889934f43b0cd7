// Package alignmat is an in-memory container for multiple sequence
// alignments (MSA): a row/column matrix of aligned biological sequences
// with an optional unique-key index and derived column views.
//
// 🚀 What is alignmat?
//
//	A small, deterministic library that keeps an alignment honest:
//		• Homogeneity: one concrete sequence type, one fixed length, enforced
//		  on construction and on every append
//		• Key index: unique per-row keys, recomputed only through a single
//		  atomic reindex path
//		• Derived views: lazy column iteration, per-axis gap statistics,
//		  plurality consensus
//		• Stable in-place sort over derived or materialized keys
//
// ✨ Why choose alignmat?
//
//   - Hard invariants – mutations are all-or-nothing; no partial state
//   - Errors are values – sentinel errors matched with errors.Is
//   - Pure Go – no cgo, no hidden deps
//   - Narrow contracts – sequences and metadata tables plug in through
//     small capability interfaces
//
// Everything is organized under two subpackages:
//
//	align/ - the alignment matrix: construction, keys, append, sort,
//	         columns, consensus, gap statistics, dict round-trips
//	seq/   - aligned sequence rows: DNA, RNA, Protein and Generic types
//	         with per-row metadata and gap accounting
//
// Quick ASCII example:
//
//	    key   0 1 2 3
//	    s1    A C - -
//	    s2    A T - C
//	    s3    T T - C
//	          ───────
//	    cons  A T - C
//
// See examples/ for runnable walkthroughs.
//
//	go get github.com/katalvlaran/alignmat
package alignmat
