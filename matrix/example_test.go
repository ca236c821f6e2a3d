// File: matrix/example_test.go
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/rnmat/matrix"
	"github.com/katalvlaran/rnmat/rational"
)

// ExampleFromGrid demonstrates the two elementary row operations used by
// exact Gaussian elimination: swap a pivot row to the top, then scale it
// so the pivot becomes 1. Every intermediate value stays exact.
func ExampleFromGrid() {
	m := matrix.FromGrid([][][2]int64{
		{{0, 1}, {1, 3}},
		{{1, 2}, {3, 4}},
	})

	// Row 0 has a zero pivot: bring row 1 up.
	_ = m.SwapRows(0, 1)
	// Normalize the new pivot 1/2 to 1 by scaling with its reciprocal.
	_ = m.ScaleRow(rational.New(2, 1), 0)

	fmt.Print(m)

	// Output:
	// [1, 3/2]
	// [0, 1/3]
}

// ExampleMatrix_AppendCol shows a column seeding an empty matrix and then
// widening it.
func ExampleMatrix_AppendCol() {
	m := matrix.New()

	_ = m.AppendCol([]rational.Rational{rational.New(1, 2), rational.New(3, 4)})
	_ = m.AppendCol([]rational.Rational{rational.New(-1, 2), rational.New(0, 1)})

	fmt.Printf("%dx%d\n", m.Rows(), m.Cols())
	fmt.Print(m)

	// Output:
	// 2x2
	// [1/2, -1/2]
	// [3/4, 0]
}

// ExampleMatrix_CanMultiply checks shapes before a multiplication.
func ExampleMatrix_CanMultiply() {
	a := matrix.FromGrid([][][2]int64{{{1, 1}, {2, 1}}})         // 1×2
	b := matrix.FromGrid([][][2]int64{{{1, 1}}, {{2, 1}}})       // 2×1

	fmt.Println(a.CanMultiply(b))
	fmt.Println(a.CanMultiply(a))

	// Output:
	// true
	// false
}
