// Package transform applies pluggable strategies to slices and sequences.
//
// A strategy is either an object implementing Transformer or Predicate, or a
// bare function wrapped in TransformerFunc or PredicateFunc. The eager
// helpers (Transform, Filter) work on slices and validate their input; the
// lazy helpers (TransformSeq, FilterSeq) work on iter.Seq and evaluate one
// element per pull.
package transform
