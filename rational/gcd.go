package rational

// GCD returns the greatest common divisor of a and b by iterative
// remainder reduction (gcd(a, b) = gcd(b, a mod b)). Operands are swapped
// first if necessary so the dividend is not smaller than the divisor.
// By convention GCD(a, 0) = a.
// Complexity: O(log min(a,b)).
func GCD(a, b uint64) uint64 {
	if a < b {
		a, b = b, a
	}
	if b == 1 {
		return 1
	}
	if a == b || b == 0 {
		return a
	}
	r := a % b
	for r > 0 {
		a, b = b, r
		r = a % b
	}

	return b
}

// reducedPair divides both magnitudes by their GCD, yielding the unique
// lowest-terms pair. reducedPair(0, d) = (0, 1) for any d > 0.
func reducedPair(a, b uint64) (uint64, uint64) {
	g := GCD(a, b)

	return a / g, b / g
}
