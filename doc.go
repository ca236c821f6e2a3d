// Package rnmat provides exact rational-number arithmetic and a dense
// matrix container built on it — no floats, no rounding error.
//
// 🚀 What is rnmat?
//
//	A small, pure-Go library for callers that need exact fractions as
//	first-class values:
//		• rational/ — canonical lowest-terms fractions with sign-aware
//		  Add/Sub/Mul/Div/Neg and a classic iterative GCD
//		• matrix/   — a row-major rectangular container of rationals with
//		  row/column append, row swap, row scaling and the
//		  multiplication-compatibility shape check
//
// ✨ Why choose rnmat?
//
//   - Exact by construction – every value is reduced to lowest terms after
//     every operation; zero has a single canonical form
//   - Value semantics – rationals are copied, never shared; matrices own
//     their entries
//   - Two-tier failures – precondition violations (zero denominator,
//     division by zero, ragged grids) panic loudly; shape mismatches on
//     matrix mutation come back as sentinel errors you can match with
//     errors.Is
//   - Pure Go – no cgo, no hidden deps
//
// Quick taste:
//
//	half := rational.New(1, 2)
//	third := rational.New(-1, 3)
//	sum := half.Add(third) // 1/6, already in lowest terms
//
//	m := matrix.FromGrid([][][2]int64{
//		{{1, 2}, {3, 4}},
//		{{5, 6}, {7, 8}},
//	})
//	_ = m.SwapRows(0, 1)
//
//	go get github.com/katalvlaran/rnmat
package rnmat
