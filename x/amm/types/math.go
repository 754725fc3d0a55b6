package types

import (
	"math"
	"math/bits"
)

// Sqrt returns the integer square root of x, truncated toward zero. The
// result is exact for perfect squares and floor(sqrt(x)) otherwise.
func Sqrt(x uint64) uint64 {
	if x > 3 {
		z := x
		y := x/2 + 1
		for y < z {
			z = y
			y = (x/y + y) / 2
		}
		return z
	}
	if x > 0 {
		return 1
	}
	return 0
}

// MulDiv computes floor(a * b / c) carrying the product through 128 bits so
// a*b cannot wrap. Returns ErrDivideByZero when c is zero and ErrOverflow
// when the quotient does not fit in uint64.
func MulDiv(a, b, c uint64) (uint64, error) {
	if c == 0 {
		return 0, ErrDivideByZero.Wrapf("muldiv(%d, %d, 0)", a, b)
	}
	hi, lo := bits.Mul64(a, b)
	if hi >= c {
		return 0, ErrOverflow.Wrapf("muldiv(%d, %d, %d) quotient exceeds uint64", a, b, c)
	}
	quo, _ := bits.Div64(hi, lo, c)
	return quo, nil
}

// SafeAdd returns a + b, or ErrOverflow if the sum wraps.
func SafeAdd(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, ErrOverflow.Wrapf("add(%d, %d) overflows uint64", a, b)
	}
	return a + b, nil
}

// SafeMul returns a * b, or ErrOverflow if the product wraps.
func SafeMul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrOverflow.Wrapf("mul(%d, %d) overflows uint64", a, b)
	}
	return lo, nil
}

// ProductExceedsLimit reports whether a * b >= limit, comparing the full
// 128-bit product so the check itself cannot overflow.
func ProductExceedsLimit(a, b, limit uint64) bool {
	hi, lo := bits.Mul64(a, b)
	return hi > 0 || lo >= limit
}
