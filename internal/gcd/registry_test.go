package gcd

import (
	"errors"
	"slices"
	"testing"

	apperrors "github.com/agbru/numlab/internal/errors"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()
	r := NewDefaultRegistry()

	if got, want := r.List(), []string{"euclid", "stein"}; !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}

	alg, err := r.Get("stein")
	if err != nil {
		t.Fatalf("Get(stein): %v", err)
	}
	if alg.Func(945, 301) != 7 {
		t.Error("registered stein algorithm returns the wrong divisor")
	}

	if _, err := r.Get("lehmer"); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("Get(lehmer) error = %v, want invalid argument", err)
	}
}

func TestRegistryRegisterAndGetAll(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.Register(SteinAlgorithm)
	r.Register(Algorithm{Name: "binary", Func: Stein[int64]})
	r.Register(EuclidAlgorithm)

	all := r.GetAll()
	names := make([]string, len(all))
	for i, a := range all {
		names[i] = a.Name
	}
	if want := []string{"binary", "euclid", "stein"}; !slices.Equal(names, want) {
		t.Errorf("GetAll() names = %v, want %v", names, want)
	}
}

func TestGlobalRegistryIsShared(t *testing.T) {
	t.Parallel()
	if GlobalRegistry() != GlobalRegistry() {
		t.Error("GlobalRegistry should return the same instance")
	}
}
