package transform

import (
	"strconv"
	"strings"

	apperrors "github.com/agbru/numlab/internal/errors"
	"github.com/agbru/numlab/internal/ieee754"
)

// IsEven matches non-zero even integers. Zero is not considered even.
var IsEven Predicate[int64] = PredicateFunc[int64](func(n int64) bool {
	return n != 0 && n%2 == 0
})

// IsOdd matches odd integers.
var IsOdd Predicate[int64] = PredicateFunc[int64](func(n int64) bool {
	return n%2 != 0
})

// ContainsDigit matches integers whose decimal form contains the digit d,
// which must be in 0..9.
func ContainsDigit(d int) (Predicate[int64], error) {
	if d < 0 || d > 9 {
		return nil, apperrors.InvalidArgument("digit", "must be in 0..9, got %d", d)
	}
	digit := strconv.Itoa(d)
	return PredicateFunc[int64](func(n int64) bool {
		return strings.Contains(strconv.FormatInt(n, 10), digit)
	}), nil
}

// HasPrefix matches strings starting with prefix.
func HasPrefix(prefix string) Predicate[string] {
	return PredicateFunc[string](func(s string) bool {
		return strings.HasPrefix(s, prefix)
	})
}

// LongerThan matches strings with more than n bytes.
func LongerThan(n int) Predicate[string] {
	return PredicateFunc[string](func(s string) bool {
		return len(s) > n
	})
}

// Always matches every value.
func Always[T any]() Predicate[T] {
	return PredicateFunc[T](func(T) bool { return true })
}

// Not inverts p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return PredicateFunc[T](func(v T) bool { return !p.IsMatch(v) })
}

// Identity returns its input unchanged.
func Identity[T any]() Transformer[T, T] {
	return TransformerFunc[T, T](func(v T) T { return v })
}

// IEEE754Transformer renders a float64 as its 64-bit IEEE-754 pattern.
type IEEE754Transformer struct{}

// TransformTo returns the bit string of f.
func (IEEE754Transformer) TransformTo(f float64) string {
	return ieee754.DoubleToIEEE754(f)
}
