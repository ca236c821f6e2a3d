package matrix

import (
	"strings"

	"github.com/katalvlaran/rnmat/rational"
)

// Matrix is a dense, row-major rectangular container of exact rationals.
// All rows always have equal length; an empty matrix has zero rows and,
// by definition, zero columns. Dimensions are derived from the stored
// rows on every call.
//
// The zero value is a valid empty matrix, but New is the conventional
// entry point.
type Matrix struct {
	rows [][]rational.Rational
}

// New returns an empty (0×0) matrix.
func New() *Matrix {
	return &Matrix{}
}

// FromGrid builds a matrix from a literal grid of (numerator, denominator)
// pairs, converting each pair through rational.New. This is the only place
// raw integers cross into the exact-rational domain.
//
// Panics with ErrRaggedGrid when any row's length differs from the first
// row's — rectangularity is enforced at construction, not just on later
// mutation. Panics with rational.ErrZeroDenominator when a pair carries a
// zero denominator.
// Complexity: O(r·c).
func FromGrid(grid [][][2]int64) *Matrix {
	var width int
	if len(grid) > 0 {
		width = len(grid[0])
	}
	rows := make([][]rational.Rational, len(grid))
	for i, src := range grid {
		if len(src) != width {
			panic(ErrRaggedGrid)
		}
		row := make([]rational.Rational, width)
		for j, p := range src {
			row[j] = rational.New(p[0], p[1])
		}
		rows[i] = row
	}

	return &Matrix{rows: rows}
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	return len(m.rows)
}

// Cols returns the number of columns: 0 for an empty matrix, otherwise
// the shared length of every row.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	if len(m.rows) == 0 {
		return 0
	}

	return len(m.rows[0])
}

// At retrieves the entry at (row, col), or ErrIndexOutOfRange when either
// index is outside valid bounds.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (rational.Rational, error) {
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return rational.Rational{}, ErrIndexOutOfRange
	}

	return m.rows[row][col], nil
}

// Clone returns a deep copy. Entries are values, so copying the rows
// fully detaches the clone from the original.
// Complexity: O(r·c).
func (m *Matrix) Clone() *Matrix {
	rows := make([][]rational.Rational, len(m.rows))
	for i, row := range m.rows {
		rows[i] = make([]rational.Rational, len(row))
		copy(rows[i], row)
	}

	return &Matrix{rows: rows}
}

// CanMultiply reports whether m·other is shape-valid: either both
// matrices are entirely empty, or m's column count equals other's row
// count (m is r×n, other is n×p). It is the gate to check before any
// multiplication routine; it performs no multiplication itself and never
// fails.
// Complexity: O(1).
func (m *Matrix) CanMultiply(other *Matrix) bool {
	if m.Rows() == 0 && other.Rows() == 0 {
		return true
	}

	return m.Cols() == other.Rows()
}

// Equal reports whether both matrices have identical shape and all
// corresponding entries are equal under rational.Equal. Two empty
// matrices are equal unconditionally.
// Complexity: O(r·c).
func (m *Matrix) Equal(other *Matrix) bool {
	if len(m.rows) != len(other.rows) {
		return false
	}
	if len(m.rows) == 0 {
		return true
	}
	if len(m.rows[0]) != len(other.rows[0]) {
		return false
	}
	for i := range m.rows {
		for j := range m.rows[i] {
			if !m.rows[i][j].Equal(other.rows[i][j]) {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer: one bracketed row per line.
// Complexity: O(r·c).
func (m *Matrix) String() string {
	var sb strings.Builder
	for _, row := range m.rows {
		sb.WriteByte('[')
		for j, e := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(e.String())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
