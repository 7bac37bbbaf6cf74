// Package logging provides a unified logging interface for numlab.
// It abstracts the underlying logging implementation, allowing consistent logging
// across the application and orchestration layers while supporting multiple backends.
// Library packages (gcd, fibonacci, ieee754, words, transform) never log.
package logging
