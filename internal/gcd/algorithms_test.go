package gcd

import (
	"context"
	"errors"
	"math"
	"testing"
)

type pairCase struct {
	name string
	a, b int64
	want int64
}

var pairCases = []pairCase{
	{"coprime-ish pair", 945, 301, 7},
	{"negative second", 945, -301, 7},
	{"zero second", 945, 0, 945},
	{"zero first negative second", 0, -301, 301},
	{"both zero", 0, 0, 0},
	{"equal", 42, 42, 42},
	{"equal opposite signs", -42, 42, 42},
	{"powers of two", 1 << 20, 1 << 12, 1 << 12},
	{"one", 1, 97, 1},
	{"primes", 7919, 104729, 1},
	{"shared factor of two", 1512, 456, 24},
	{"both negative", -1044, -1512, 36},
}

func TestEuclid(t *testing.T) {
	t.Parallel()
	for _, tc := range pairCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Euclid(tc.a, tc.b); got != tc.want {
				t.Errorf("Euclid(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestEuclidContext(t *testing.T) {
	t.Parallel()
	for _, tc := range pairCases {
		got, err := EuclidContext(context.Background(), tc.a, tc.b)
		if err != nil || got != tc.want {
			t.Errorf("EuclidContext(%d, %d) = %d, %v; want %d", tc.a, tc.b, got, err, tc.want)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := EuclidContext(ctx, int64(1), int64(1)<<40); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled EuclidContext error = %v, want context.Canceled", err)
	}
	// Short folds finish before the first check.
	if got, err := EuclidContext(ctx, int64(945), int64(301)); err != nil || got != 7 {
		t.Errorf("EuclidContext(945, 301) = %d, %v; want 7", got, err)
	}
}

func TestStein(t *testing.T) {
	t.Parallel()
	for _, tc := range pairCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Stein(tc.a, tc.b); got != tc.want {
				t.Errorf("Stein(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

// TestGenericWidths checks the pairwise functions on narrower signed types.
func TestGenericWidths(t *testing.T) {
	t.Parallel()

	if got := Euclid[int8](-96, 120); got != 24 {
		t.Errorf("Euclid[int8](-96, 120) = %d, want 24", got)
	}
	if got := Stein[int16](math.MaxInt16, 7); got != 7 {
		t.Errorf("Stein[int16](MaxInt16, 7) = %d, want 7", got)
	}
	if got := Stein[int32](1<<30, 3<<20); got != 1<<20 {
		t.Errorf("Stein[int32] = %d, want %d", got, 1<<20)
	}
	if got := Euclid(945, 301); got != 7 {
		t.Errorf("Euclid[int](945, 301) = %d, want 7", got)
	}
}

func TestSteinLargeOperands(t *testing.T) {
	t.Parallel()
	a := int64(math.MaxInt64)
	if got := Stein(a, a-1); got != 1 {
		t.Errorf("Stein(MaxInt64, MaxInt64-1) = %d, want 1", got)
	}
	if got := Stein(int64(1)<<62, int64(3)<<40); got != int64(1)<<40 {
		t.Errorf("Stein(2^62, 3*2^40) = %d, want 2^40", got)
	}
}

func BenchmarkEuclid(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Euclid[int64](7920, 22374)
	}
}

func BenchmarkStein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Stein[int64](7920, 22374)
	}
}
