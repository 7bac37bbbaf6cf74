// Package gcd computes greatest common divisors with two classical
// algorithms: Euclid's subtraction method and Stein's binary method.
//
// Pairwise functions are generic over signed integer types. The list
// operations ([OfMany], [WithTiming], [CompareTimings]) fold a pairwise
// algorithm left to right across an explicit slice of int64 values and
// validate the slice first. All results are non-negative.
//
// Each list operation has a Context variant that stops with ctx.Err() once
// the context is done. Euclid's subtraction loop can run for a very long time
// on operands with a large ratio, so [EuclidContext] also checks inside the
// loop.
//
// Zero handling follows a single policy per call. By default (AllowZero) a
// zero operand takes the short-circuit and contributes nothing to the fold, so
// GCD(945, 0) is 945. With RejectZero every entry point refuses a list that
// contains a zero.
package gcd
