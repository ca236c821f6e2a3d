// Package matrix provides a dense, row-major container of exact rationals
// (rnmat/rational) with a strict rectangularity invariant: every row has
// the same length, and row/column counts are always derived from the
// stored rows — never cached, so they can never desynchronize.
//
// ✨ Key features:
//   - New / FromGrid construction (FromGrid converts signed integer pairs
//     through rational.New and rejects ragged input)
//   - AppendRow / AppendCol growth; a column appended to an empty matrix
//     seeds one single-element row per entry
//   - SwapRows and ScaleRow, the two elementary row operations behind
//     exact Gaussian elimination
//   - CanMultiply — the m×n · n×p shape precondition, checked without
//     performing the multiplication
//   - Equal, At, Clone, String
//
// ⚙️ Usage:
//
//	m := matrix.FromGrid([][][2]int64{
//		{{1, -2}, {-3, 4}},
//		{{-5, 6}, {7, -8}},
//	})
//	_ = m.SwapRows(0, 1)
//	_ = m.ScaleRow(rational.New(1, 2), 0)
//
// Failure model, two visible tiers:
//   - FromGrid panics with ErrRaggedGrid on a non-rectangular literal —
//     a malformed literal is a caller bug.
//   - Mutations return sentinel errors (ErrRowMismatch, ErrColMismatch,
//     ErrIndexOutOfRange) matched via errors.Is, so callers can validate,
//     correct, and retry. Equal and CanMultiply never fail.
//
// The matrix owns its entries: rows are copied in on append and copied
// out on Clone. A Matrix is not safe for concurrent mutation; callers
// needing cross-goroutine access must add their own synchronization.
package matrix
