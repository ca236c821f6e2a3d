package rational

import "errors"

// Sentinel errors for rational construction and arithmetic.
// Fatal conditions panic with these values; NewChecked returns them.
var (
	// ErrZeroDenominator indicates a denominator of zero at construction.
	ErrZeroDenominator = errors.New("rational: denominator is zero")
	// ErrDivideByZero indicates division by a zero-valued rational,
	// which would put a zero into the result's denominator.
	ErrDivideByZero = errors.New("rational: division by zero-valued operand")
)
