//go:build gmp

// This file provides a GMP-backed sequence generator, compiled only with the
// "gmp" build tag (go build -tags=gmp) on systems with libgmp installed.

package fibonacci

import (
	"iter"
	"math/big"

	"github.com/ncw/gmp"

	apperrors "github.com/agbru/numlab/internal/errors"
)

// GenerateGMP has the same contract as Generate but performs the rolling sum
// with GMP integers, converting each yielded term to a fresh *big.Int.
func GenerateGMP(count int) (iter.Seq[*big.Int], error) {
	if count <= 0 {
		return nil, apperrors.InvalidArgument("count", "must be greater than zero, got %d", count)
	}

	return func(yield func(*big.Int) bool) {
		current, next := gmp.NewInt(1), gmp.NewInt(1)
		for i := 0; i < count; i++ {
			if !yield(gmpToStdBigInt(current)) {
				return
			}
			current.Add(current, next)
			current, next = next, current
		}
	}, nil
}

// gmpToStdBigInt converts a non-negative gmp.Int to a standard library big.Int.
func gmpToStdBigInt(g *gmp.Int) *big.Int {
	return new(big.Int).SetBytes(g.Bytes())
}
