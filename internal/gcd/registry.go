package gcd

import (
	"context"
	"slices"
	"sync"

	apperrors "github.com/agbru/numlab/internal/errors"
)

// Algorithm is a named pairwise GCD function.
type Algorithm struct {
	// Name is the registry key ("euclid", "stein").
	Name string
	// Description is a human-readable label for reports.
	Description string
	// Func computes the GCD of two operands.
	Func func(a, b int64) int64
	// FuncContext, when set, is a cancellable Func for algorithms whose
	// pairwise step can run long.
	FuncContext func(ctx context.Context, a, b int64) (int64, error)
}

// pair runs one pairwise step, checking ctx first.
func (a Algorithm) pair(ctx context.Context, x, y int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if a.FuncContext != nil {
		return a.FuncContext(ctx, x, y)
	}
	return a.Func(x, y), nil
}

// The built-in algorithms.
var (
	EuclidAlgorithm = Algorithm{Name: "euclid", Description: "Euclid (subtraction)", Func: Euclid[int64], FuncContext: EuclidContext[int64]}
	SteinAlgorithm  = Algorithm{Name: "stein", Description: "Stein (binary)", Func: Stein[int64]}
)

// Registry maps algorithm names to implementations. It is safe for
// concurrent use.
type Registry struct {
	mu         sync.RWMutex
	algorithms map[string]Algorithm
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{algorithms: make(map[string]Algorithm)}
}

// NewDefaultRegistry returns a registry holding Euclid and Stein.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(EuclidAlgorithm)
	r.Register(SteinAlgorithm)
	return r
}

var (
	globalRegistry     *Registry
	globalRegistryOnce sync.Once
)

// GlobalRegistry returns the process-wide default registry.
func GlobalRegistry() *Registry {
	globalRegistryOnce.Do(func() { globalRegistry = NewDefaultRegistry() })
	return globalRegistry
}

// Register adds or replaces an algorithm.
func (r *Registry) Register(alg Algorithm) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.algorithms[alg.Name] = alg
}

// Get returns the algorithm registered under name.
func (r *Registry) Get(name string) (Algorithm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	alg, ok := r.algorithms[name]
	if !ok {
		return Algorithm{}, apperrors.InvalidArgument("algorithm", "unknown algorithm %q", name)
	}
	return alg, nil
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// GetAll returns every registered algorithm, sorted by name.
func (r *Registry) GetAll() []Algorithm {
	names := r.List()
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Algorithm, 0, len(names))
	for _, name := range names {
		all = append(all, r.algorithms[name])
	}
	return all
}
