package matrix

import "github.com/katalvlaran/rnmat/rational"

// In-place mutations. Each method validates shape or bounds first and
// returns a sentinel error without touching the matrix on failure, so a
// caller can correct the input and retry.

// AppendRow appends row as the new last row. On a non-empty matrix the
// row length must equal the current column count, otherwise
// ErrRowMismatch is returned. The input slice is copied; the matrix never
// aliases caller memory.
// Complexity: O(c).
func (m *Matrix) AppendRow(row []rational.Rational) error {
	if len(m.rows) > 0 && len(row) != len(m.rows[0]) {
		return ErrRowMismatch
	}
	r := make([]rational.Rational, len(row))
	copy(r, row)
	m.rows = append(m.rows, r)

	return nil
}

// AppendCol appends col as the new last column. On an empty matrix each
// element of col seeds its own single-element row, producing a len(col)×1
// matrix. On a non-empty matrix the column length must equal the current
// row count, otherwise ErrColMismatch is returned; on success element i
// is appended to the end of row i, in order.
// Complexity: O(r).
func (m *Matrix) AppendCol(col []rational.Rational) error {
	if len(m.rows) == 0 {
		for _, e := range col {
			m.rows = append(m.rows, []rational.Rational{e})
		}

		return nil
	}
	if len(col) != len(m.rows) {
		return ErrColMismatch
	}
	for i, e := range col {
		m.rows[i] = append(m.rows[i], e)
	}

	return nil
}

// SwapRows exchanges rows i and j in place. Either index outside
// [0, Rows) yields ErrIndexOutOfRange; swapping an index with itself is a
// no-op success.
// Complexity: O(1).
func (m *Matrix) SwapRows(i, j int) error {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= len(m.rows) {
		return ErrIndexOutOfRange
	}
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]

	return nil
}

// ScaleRow replaces every entry of the given row by its product with
// factor, entry by entry, preserving order. An index outside [0, Rows)
// yields ErrIndexOutOfRange.
// Complexity: O(c) products plus reductions.
func (m *Matrix) ScaleRow(factor rational.Rational, row int) error {
	if row < 0 || row >= len(m.rows) {
		return ErrIndexOutOfRange
	}
	for j, e := range m.rows[row] {
		m.rows[row][j] = e.Mul(factor)
	}

	return nil
}
