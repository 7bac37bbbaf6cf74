package gcd

import (
	"context"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Euclid returns the greatest common divisor of a and b using repeated
// subtraction of the smaller absolute value from the larger. Neither operand
// may be the minimum value of T.
func Euclid[T constraints.Signed](a, b T) T {
	g, _ := EuclidContext(context.Background(), a, b)
	return g
}

// cancelCheckEvery is the number of Euclid subtractions between two
// cancellation checks.
const cancelCheckEvery = 1 << 16

// EuclidContext is Euclid that gives up with ctx.Err() once ctx is done.
// The subtraction count is linear in the ratio of the operands, so a single
// pair such as (1, 10^17) can run for years.
func EuclidContext[T constraints.Signed](ctx context.Context, a, b T) (T, error) {
	a, b = abs(a), abs(b)
	if r, ok := shortCircuit(a, b); ok {
		return r, nil
	}

	for steps := 1; a != b; steps++ {
		if steps%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if a > b {
			a -= b
		} else {
			b -= a
		}
	}
	return a, nil
}

// Stein returns the greatest common divisor of a and b using the binary
// algorithm: common factors of two are removed and counted, the remaining odd
// residues are reduced by subtraction, and the count is restored at the end.
func Stein[T constraints.Signed](a, b T) T {
	a, b = abs(a), abs(b)
	if r, ok := shortCircuit(a, b); ok {
		return r
	}

	// a and b are both non-zero here, so neither count is 64.
	shift := bits.TrailingZeros64(uint64(a | b))
	a >>= bits.TrailingZeros64(uint64(a))

	for b != 0 {
		b >>= bits.TrailingZeros64(uint64(b))
		if a > b {
			a, b = b, a
		}
		b -= a
	}
	return a << shift
}

// shortCircuit handles the operand pairs for which the subtraction loops are
// either degenerate (a zero operand) or trivially done (equal operands).
// Both inputs must already be non-negative.
func shortCircuit[T constraints.Signed](a, b T) (T, bool) {
	switch {
	case a == 0:
		return b, true
	case b == 0:
		return a, true
	case a == b:
		return a, true
	}
	return 0, false
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
