package gcd

import (
	"context"
	"math"
	"slices"

	apperrors "github.com/agbru/numlab/internal/errors"
)

// ZeroPolicy selects how list operations treat zero elements.
type ZeroPolicy int

const (
	// AllowZero lets zero operands take the pairwise short-circuit.
	AllowZero ZeroPolicy = iota
	// RejectZero makes every list operation fail on a zero element.
	RejectZero
)

// String returns the flag spelling of the policy.
func (p ZeroPolicy) String() string {
	if p == RejectZero {
		return "reject"
	}
	return "allow"
}

// ParseZeroPolicy converts "allow" or "reject" into a ZeroPolicy.
func ParseZeroPolicy(s string) (ZeroPolicy, error) {
	switch s {
	case "", "allow":
		return AllowZero, nil
	case "reject":
		return RejectZero, nil
	}
	return AllowZero, apperrors.InvalidArgument("zero", "unknown zero policy %q (want allow or reject)", s)
}

type options struct {
	zeroPolicy ZeroPolicy
}

// Option configures a list operation.
type Option func(*options)

// WithZeroPolicy sets the zero policy of a list operation.
func WithZeroPolicy(p ZeroPolicy) Option {
	return func(o *options) { o.zeroPolicy = p }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// CheckInput validates a number list against the rules shared by every list
// operation: the slice must be non-nil, hold at least two values, none of
// them math.MinInt64, and under RejectZero contain no zero.
func CheckInput(numbers []int64, policy ZeroPolicy) error {
	if numbers == nil {
		return apperrors.NilArgument("numbers")
	}
	if len(numbers) < 2 {
		return apperrors.InvalidArgument("numbers",
			"unable to find GCD of %d number(s), at least 2 are required", len(numbers))
	}
	// |math.MinInt64| has no int64 representation.
	if i := slices.Index(numbers, math.MinInt64); i >= 0 {
		return apperrors.InvalidArgument("numbers", "must be greater than %d (index %d)", int64(math.MinInt64), i)
	}
	if policy == RejectZero {
		if i := slices.Index(numbers, 0); i >= 0 {
			return apperrors.InvalidArgument("numbers", "must not contain zero (index %d)", i)
		}
	}
	return nil
}

// OfMany validates numbers and folds alg across them left to right:
// f(f(f(n0, n1), n2), n3)...
func OfMany(numbers []int64, alg Algorithm, opts ...Option) (int64, error) {
	return OfManyContext(context.Background(), numbers, alg, opts...)
}

// OfManyContext is OfMany stopping with ctx.Err() once ctx is done.
func OfManyContext(ctx context.Context, numbers []int64, alg Algorithm, opts ...Option) (int64, error) {
	if alg.Func == nil {
		return 0, apperrors.NilArgument("algorithm")
	}
	o := buildOptions(opts)
	if err := CheckInput(numbers, o.zeroPolicy); err != nil {
		return 0, err
	}
	return fold(ctx, numbers, alg)
}

// EuclidOf is OfMany with Euclid's algorithm.
func EuclidOf(numbers []int64, opts ...Option) (int64, error) {
	return OfMany(numbers, EuclidAlgorithm, opts...)
}

// SteinOf is OfMany with Stein's algorithm.
func SteinOf(numbers []int64, opts ...Option) (int64, error) {
	return OfMany(numbers, SteinAlgorithm, opts...)
}

// fold expects a validated list of at least two numbers. ctx is checked
// before every pairwise step.
func fold(ctx context.Context, numbers []int64, alg Algorithm) (int64, error) {
	result, err := alg.pair(ctx, numbers[0], numbers[1])
	if err != nil {
		return 0, err
	}
	for _, n := range numbers[2:] {
		if result, err = alg.pair(ctx, result, n); err != nil {
			return 0, err
		}
	}
	return result, nil
}
