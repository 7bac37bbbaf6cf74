package fibonacci

import (
	"math/big"
	"math/bits"

	apperrors "github.com/agbru/numlab/internal/errors"
)

// Term returns F(index) using the fast doubling identities, with F(0) = 0
// and F(1) = F(2) = 1. It runs in O(log index) big-integer steps and is used
// to jump to a single term without generating the ones before it.
func Term(index uint64) *big.Int {
	fk, _ := doubling(index, nil)
	return fk
}

// TermMod returns F(index) mod m. Memory usage is O(log m) regardless of
// index, which makes it suitable for the last K digits of huge terms.
//
// Uses the identities:
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))  mod m
//	F(2k+1) = F(k+1)² + F(k)²            mod m
func TermMod(index uint64, m *big.Int) (*big.Int, error) {
	if m == nil {
		return nil, apperrors.NilArgument("modulus")
	}
	if m.Sign() <= 0 {
		return nil, apperrors.InvalidArgument("modulus", "must be positive, got %s", m)
	}
	fk, _ := doubling(index, m)
	return fk, nil
}

// doubling returns (F(n), F(n+1)), reduced modulo m when m is non-nil.
func doubling(n uint64, m *big.Int) (*big.Int, *big.Int) {
	fk := big.NewInt(0)  // F(k)
	fk1 := big.NewInt(1) // F(k+1)
	t1 := new(big.Int)
	t2 := new(big.Int)

	reduce := func(x *big.Int) {
		if m != nil {
			x.Mod(x, m)
		}
	}
	if m != nil && m.Cmp(big.NewInt(1)) == 0 {
		return fk, big.NewInt(0)
	}

	for i := bits.Len64(n) - 1; i >= 0; i-- {
		// F(2k) = F(k) * (2*F(k+1) - F(k)); big.Int.Mod is Euclidean, so the
		// intermediate difference never stays negative after reduction.
		t1.Lsh(fk1, 1)
		t1.Sub(t1, fk)
		reduce(t1)
		t1.Mul(t1, fk)
		reduce(t1)

		// F(2k+1) = F(k+1)² + F(k)²
		t2.Mul(fk1, fk1)
		fk.Mul(fk, fk)
		t2.Add(t2, fk)
		reduce(t2)

		fk.Set(t1)
		fk1.Set(t2)

		if (n>>uint(i))&1 == 1 {
			t1.Add(fk, fk1)
			reduce(t1)
			fk.Set(fk1)
			fk1.Set(t1)
		}
	}
	return fk, fk1
}
