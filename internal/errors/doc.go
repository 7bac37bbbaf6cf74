// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// invalid input, calculation, etc.) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types implement the Unwrap() method to support errors.Is() and errors.As().
// Input failures always unwrap to one of the two sentinel kinds,
// [ErrNilArgument] or [ErrInvalidArgument].
package apperrors
