// Package rational implements an exact rational number as an immutable
// value type: a sign flag plus an unsigned (numerator, denominator)
// magnitude pair, always held in lowest terms.
//
// 🚀 What is a canonical rational?
//
//	Every value produced by this package satisfies:
//	  • denominator ≠ 0, always
//	  • gcd(numerator, denominator) = 1 whenever numerator ≠ 0
//	  • zero is exactly {sign: +, 0/1}, never -0 and never 0/7
//
//	Construction reduces, and every arithmetic result is reduced again
//	before it is returned, so the invariant holds unconditionally.
//
// ✨ Key features:
//   - New / NewChecked construction from signed integer pairs
//   - Add, Sub, Mul, Div, Neg with sign-aware magnitude algebra
//   - IsNegative / IsPositive / IsZero predicates over canonical form
//   - Equal that never confuses 4/2 with 1/2 or -0 with 0
//   - GCD as a standalone utility (iterative remainder reduction)
//
// ⚙️ Usage:
//
//	a := rational.New(1, -2)  // -1/2
//	b := rational.New(-3, 4)  // -3/4
//	c := a.Mul(b)             // 3/8
//
// Failure model, two visible tiers:
//   - Panics (programmer errors): New with a zero denominator, Div by a
//     zero-valued operand. Both panic with their sentinel error.
//   - NewChecked returns ErrZeroDenominator instead of panicking when the
//     caller cannot vouch for its input.
//
// Overflow bound: magnitudes are uint64, widened from the 32-bit source
// this design descends from. Add/Sub/Mul/Div combine denominators as a raw
// product, so intermediate magnitudes can reach a·b; keep numerators and
// denominators below 2^32 and no operation can wrap. The package does not
// check overflow beyond that documented bound.
package rational
