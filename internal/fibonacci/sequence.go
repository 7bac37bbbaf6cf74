package fibonacci

import (
	"iter"
	"math/big"
	"slices"

	apperrors "github.com/agbru/numlab/internal/errors"
)

// Generate returns a lazy sequence of the first count Fibonacci numbers.
//
// Terms are computed on demand with a two-variable rolling sum, so a consumer
// that stops early never pays for the remaining terms. Every range over the
// returned sequence starts again from the first term, and every yielded value
// is a fresh *big.Int owned by the consumer.
//
// Parameters:
//   - count: The number of terms to produce. Must be greater than zero.
//
// Returns:
//   - iter.Seq[*big.Int]: The sequence.
//   - error: An ErrInvalidArgument validation error when count <= 0.
func Generate(count int) (iter.Seq[*big.Int], error) {
	if count <= 0 {
		return nil, apperrors.InvalidArgument("count", "must be greater than zero, got %d", count)
	}
	if count == 1 {
		return func(yield func(*big.Int) bool) {
			yield(big.NewInt(1))
		}, nil
	}

	return func(yield func(*big.Int) bool) {
		current, next := big.NewInt(1), big.NewInt(1)
		for i := 0; i < count; i++ {
			if !yield(new(big.Int).Set(current)) {
				return
			}
			// (current, next) -> (next, current+next)
			current.Add(current, next)
			current, next = next, current
		}
	}, nil
}

// maxPrealloc bounds the capacity reserved up front for a collected
// sequence; longer sequences grow by append.
const maxPrealloc = 1 << 16

// CapacityHint returns the slice capacity to reserve for count terms.
func CapacityHint(count int) int {
	return max(0, min(count, maxPrealloc))
}

// First collects the first count Fibonacci numbers into a slice.
func First(count int) ([]*big.Int, error) {
	seq, err := Generate(count)
	if err != nil {
		return nil, err
	}
	return slices.AppendSeq(make([]*big.Int, 0, CapacityHint(count)), seq), nil
}
