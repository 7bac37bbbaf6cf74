// Package fibonacci produces Fibonacci numbers as arbitrary-precision
// integers, either as a lazy, restartable sequence of the first terms
// ([Generate], [First]) or as a single term computed by fast doubling
// ([Term], [TermMod]).
//
// The sequence is 1-indexed: 1, 1, 2, 3, 5, ... so position k of the
// sequence equals Term(k).
package fibonacci
