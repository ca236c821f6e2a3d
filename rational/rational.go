package rational

import "strconv"

// Rational is an exact fraction in lowest terms. The sign is tracked
// separately from the unsigned magnitude pair; zero is always stored as
// {neg: false, num: 0, den: 1}.
//
// Rational has value semantics: it is copied on every use and every
// operation returns a new canonical value. The zero value of the type is
// NOT valid (its denominator is 0); obtain values via New, NewChecked,
// Zero, or arithmetic on valid values.
type Rational struct {
	neg bool   // true means the value is negative; forced false at zero
	num uint64 // numerator magnitude
	den uint64 // denominator magnitude, never 0 for a constructed value
}

// New builds the canonical rational n/d. The sign is negative iff exactly
// one of n, d is negative; magnitudes are reduced by their GCD at
// construction. Panics with ErrZeroDenominator when d == 0 — a zero
// denominator is a caller bug, not a recoverable condition (see
// NewChecked for the non-panicking variant).
// Complexity: O(log min(|n|,|d|)).
func New(n, d int64) Rational {
	if d == 0 {
		panic(ErrZeroDenominator)
	}
	if n == 0 {
		return Rational{neg: false, num: 0, den: 1}
	}
	r := Rational{
		neg: (n < 0) != (d < 0),
		num: absU64(n),
		den: absU64(d),
	}
	if g := GCD(r.den, r.num); g > 1 {
		r.num /= g
		r.den /= g
	}

	return r
}

// NewChecked is like New but returns ErrZeroDenominator instead of
// panicking when d == 0, for callers that cannot vouch for their input.
func NewChecked(n, d int64) (Rational, error) {
	if d == 0 {
		return Rational{}, ErrZeroDenominator
	}

	return New(n, d), nil
}

// Zero returns the canonical zero value 0/1. A fresh value is constructed
// on each call; there is no shared singleton to alias.
func Zero() Rational {
	return Rational{neg: false, num: 0, den: 1}
}

// IsNegative reports whether the value is strictly below zero.
// Zero is neither negative nor positive.
func (r Rational) IsNegative() bool {
	return r.neg && r.num != 0
}

// IsPositive reports whether the value is strictly above zero.
func (r Rational) IsPositive() bool {
	return !r.neg && r.num != 0
}

// IsZero reports whether the value is zero.
func (r Rational) IsZero() bool {
	return r.num == 0
}

// Num returns the numerator magnitude of the canonical form.
func (r Rational) Num() uint64 {
	return r.num
}

// Den returns the denominator magnitude of the canonical form.
func (r Rational) Den() uint64 {
	return r.den
}

// Equal reports exact equality of two rationals. Both magnitude pairs are
// re-reduced before comparison, so equality holds even for a value that
// slipped past construction in non-lowest terms; sign flags must match,
// except that zero equals zero regardless of a stray sign bit. Callers
// must use Equal, never ==, to compare values.
func (r Rational) Equal(other Rational) bool {
	if r.num == 0 && other.num == 0 {
		return true
	}
	rn, rd := reducedPair(r.num, r.den)
	on, od := reducedPair(other.num, other.den)

	return rn == on && rd == od && r.neg == other.neg
}

// String renders the canonical form: "0", "5", "1/2", "-3/4".
// Whole values omit the "/1" suffix.
func (r Rational) String() string {
	if r.num == 0 {
		return "0"
	}
	s := ""
	if r.neg {
		s = "-"
	}
	s += strconv.FormatUint(r.num, 10)
	if r.den != 1 {
		s += "/" + strconv.FormatUint(r.den, 10)
	}

	return s
}

// reduce re-establishes canonical form on a raw arithmetic result:
// zero collapses to {+, 0/1}, anything else is divided through by the
// magnitudes' GCD. The only mutation of a Rational anywhere in the
// package happens here, before the value escapes.
func (r *Rational) reduce() {
	if r.den == 0 {
		panic(ErrZeroDenominator)
	}
	if r.num == 0 {
		r.neg = false
		r.den = 1

		return
	}
	if g := GCD(r.den, r.num); g > 1 {
		r.num /= g
		r.den /= g
	}
}

// absU64 returns |v| as a uint64, correct for math.MinInt64 too.
func absU64(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}

	return uint64(v)
}
