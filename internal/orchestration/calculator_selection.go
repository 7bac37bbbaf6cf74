package orchestration

import "github.com/agbru/numlab/internal/gcd"

// AlgorithmSource is the subset of gcd.Registry needed to resolve names.
type AlgorithmSource interface {
	List() []string
	Get(name string) (gcd.Algorithm, error)
}

// GetAlgorithmsToRun resolves the --algo selection against source. "all"
// selects every registered algorithm in sorted order; an unknown name
// selects nothing.
func GetAlgorithmsToRun(algo string, source AlgorithmSource) []gcd.Algorithm {
	if algo == "all" {
		names := source.List()
		algorithms := make([]gcd.Algorithm, 0, len(names))
		for _, name := range names {
			if alg, err := source.Get(name); err == nil {
				algorithms = append(algorithms, alg)
			}
		}
		return algorithms
	}
	if alg, err := source.Get(algo); err == nil {
		return []gcd.Algorithm{alg}
	}
	return nil
}
