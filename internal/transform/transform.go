package transform

import (
	"iter"

	apperrors "github.com/agbru/numlab/internal/errors"
)

// Transformer maps a value of type In to a value of type Out.
type Transformer[In, Out any] interface {
	TransformTo(In) Out
}

// TransformerFunc adapts an ordinary function to the Transformer interface.
type TransformerFunc[In, Out any] func(In) Out

// TransformTo calls f(v).
func (f TransformerFunc[In, Out]) TransformTo(v In) Out {
	return f(v)
}

// Predicate reports whether a value matches a condition.
type Predicate[T any] interface {
	IsMatch(T) bool
}

// PredicateFunc adapts an ordinary function to the Predicate interface.
type PredicateFunc[T any] func(T) bool

// IsMatch calls f(v).
func (f PredicateFunc[T]) IsMatch(v T) bool {
	return f(v)
}

func checkTransformer[In, Out any](t Transformer[In, Out]) error {
	if t == nil {
		return apperrors.NilArgument("transformer")
	}
	if f, ok := t.(TransformerFunc[In, Out]); ok && f == nil {
		return apperrors.NilArgument("transformer")
	}
	return nil
}

func checkPredicate[T any](p Predicate[T]) error {
	if p == nil {
		return apperrors.NilArgument("predicate")
	}
	if f, ok := p.(PredicateFunc[T]); ok && f == nil {
		return apperrors.NilArgument("predicate")
	}
	return nil
}

// Transform applies t to every item and returns the results in input order.
// Items must be non-nil and non-empty.
func Transform[In, Out any](items []In, t Transformer[In, Out]) ([]Out, error) {
	if items == nil {
		return nil, apperrors.NilArgument("items")
	}
	if err := checkTransformer(t); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.InvalidArgument("items", "must contain at least one element")
	}
	out := make([]Out, len(items))
	for i, v := range items {
		out[i] = t.TransformTo(v)
	}
	return out, nil
}

// Filter returns the items matched by p, preserving order. An empty input
// yields an empty, non-nil result.
func Filter[T any](items []T, p Predicate[T]) ([]T, error) {
	if items == nil {
		return nil, apperrors.NilArgument("items")
	}
	if err := checkPredicate(p); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, v := range items {
		if p.IsMatch(v) {
			out = append(out, v)
		}
	}
	return out, nil
}

// TransformSeq returns a sequence yielding t applied to each element of seq.
// Nothing is evaluated until the result is ranged over.
func TransformSeq[In, Out any](seq iter.Seq[In], t Transformer[In, Out]) (iter.Seq[Out], error) {
	if seq == nil {
		return nil, apperrors.NilArgument("seq")
	}
	if err := checkTransformer(t); err != nil {
		return nil, err
	}
	return func(yield func(Out) bool) {
		for v := range seq {
			if !yield(t.TransformTo(v)) {
				return
			}
		}
	}, nil
}

// FilterSeq returns a sequence yielding the elements of seq matched by p.
func FilterSeq[T any](seq iter.Seq[T], p Predicate[T]) (iter.Seq[T], error) {
	if seq == nil {
		return nil, apperrors.NilArgument("seq")
	}
	if err := checkPredicate(p); err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		for v := range seq {
			if p.IsMatch(v) && !yield(v) {
				return
			}
		}
	}, nil
}
