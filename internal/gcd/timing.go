package gcd

import (
	"context"
	"time"

	apperrors "github.com/agbru/numlab/internal/errors"
)

// Ticks is an elapsed interval read from the monotonic clock. It is only
// meaningful for comparing runs against each other.
type Ticks = time.Duration

// minTicks is the smallest elapsed value reported for a measured window.
// Clocks coarser than the computation would otherwise report zero.
const minTicks Ticks = 1

// Result is the outcome of a timed GCD fold.
type Result struct {
	// Algorithm is the name of the pairwise algorithm that was folded.
	Algorithm string
	// GCD is the non-negative greatest common divisor.
	GCD int64
	// Elapsed covers the fold only, never the validation.
	Elapsed Ticks
}

// Comparison holds independent timed runs of both algorithms over the same
// input list.
type Comparison struct {
	Euclid Result
	Stein  Result
}

// Agree reports whether both algorithms produced the same divisor.
func (c Comparison) Agree() bool { return c.Euclid.GCD == c.Stein.GCD }

// WithTiming validates numbers, then folds alg across them while measuring
// the elapsed time of the fold alone.
func WithTiming(numbers []int64, alg Algorithm, opts ...Option) (Result, error) {
	return WithTimingContext(context.Background(), numbers, alg, opts...)
}

// WithTimingContext is WithTiming stopping with ctx.Err() once ctx is done.
func WithTimingContext(ctx context.Context, numbers []int64, alg Algorithm, opts ...Option) (Result, error) {
	if alg.Func == nil {
		return Result{}, apperrors.NilArgument("algorithm")
	}
	o := buildOptions(opts)
	if err := CheckInput(numbers, o.zeroPolicy); err != nil {
		return Result{}, err
	}
	return timedFold(ctx, numbers, alg)
}

// CompareTimings validates numbers once and runs Euclid and Stein over them
// independently, returning both divisors and both elapsed counts. It makes
// no claim about which algorithm is faster.
func CompareTimings(numbers []int64, opts ...Option) (Comparison, error) {
	return CompareTimingsContext(context.Background(), numbers, opts...)
}

// CompareTimingsContext is CompareTimings stopping with ctx.Err() once ctx
// is done.
func CompareTimingsContext(ctx context.Context, numbers []int64, opts ...Option) (Comparison, error) {
	o := buildOptions(opts)
	if err := CheckInput(numbers, o.zeroPolicy); err != nil {
		return Comparison{}, err
	}
	euclid, err := timedFold(ctx, numbers, EuclidAlgorithm)
	if err != nil {
		return Comparison{}, err
	}
	stein, err := timedFold(ctx, numbers, SteinAlgorithm)
	if err != nil {
		return Comparison{}, err
	}
	return Comparison{Euclid: euclid, Stein: stein}, nil
}

func timedFold(ctx context.Context, numbers []int64, alg Algorithm) (Result, error) {
	start := time.Now()
	g, err := fold(ctx, numbers, alg)
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, err
	}
	if elapsed < minTicks {
		elapsed = minTicks
	}
	return Result{Algorithm: alg.Name, GCD: g, Elapsed: elapsed}, nil
}
