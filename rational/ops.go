package rational

// Arithmetic over canonical rationals. Add and Sub bring both operands to
// the common denominator den(a)·den(b) — the raw product, not the LCM —
// and combine the numerator magnitudes sign-aware. Every result passes
// through reduce before it is returned, so callers always observe
// lowest-terms canonical values. See the package doc for the documented
// uint64 overflow bound implied by the raw-product denominators.

// Add returns r + other.
// Complexity: O(log min) for the final reduction.
func (r Rational) Add(other Rational) Rational {
	res := combine(r.neg, r.num*other.den, other.neg, r.den*other.num, r.den*other.den)
	res.reduce()

	return res
}

// Sub returns r - other, computed as the sign-aware combination of r with
// the negation of other over the raw-product common denominator.
func (r Rational) Sub(other Rational) Rational {
	res := combine(r.neg, r.num*other.den, !other.neg, r.den*other.num, r.den*other.den)
	res.reduce()

	return res
}

// Mul returns r · other. Magnitudes multiply pairwise; the result is
// negative iff exactly one operand is.
func (r Rational) Mul(other Rational) Rational {
	res := Rational{
		neg: r.neg != other.neg,
		num: r.num * other.num,
		den: r.den * other.den,
	}
	res.reduce()

	return res
}

// Div returns r / other, i.e. r multiplied by the reciprocal of other.
// Panics with ErrDivideByZero when other is zero-valued, since inverting
// it would put a zero into the denominator.
func (r Rational) Div(other Rational) Rational {
	if other.num == 0 {
		panic(ErrDivideByZero)
	}
	res := Rational{
		neg: r.neg != other.neg,
		num: r.num * other.den,
		den: r.den * other.num,
	}
	res.reduce()

	return res
}

// Neg returns -r. Zero stays the canonical non-negative zero.
func (r Rational) Neg() Rational {
	if r.num == 0 {
		return r
	}

	return Rational{neg: !r.neg, num: r.num, den: r.den}
}

// combine merges two signed magnitudes a, b over an already-common
// denominator. Equal signs add the magnitudes; opposite signs subtract
// the smaller from the larger and the result takes the sign of the larger
// operand. The returned value is raw — the caller must reduce it.
func combine(negA bool, a uint64, negB bool, b uint64, den uint64) Rational {
	if negA == negB {
		return Rational{neg: negA, num: a + b, den: den}
	}
	if a >= b {
		return Rational{neg: negA, num: a - b, den: den}
	}

	return Rational{neg: negB, num: b - a, den: den}
}
