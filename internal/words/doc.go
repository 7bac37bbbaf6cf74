// Package words spells out float64 values one character at a time.
//
// A value is first formatted in its shortest round-trip form for a given
// Culture, then every digit, sign, separator and exponent marker of that
// text is replaced by its English word:
//
//	-23.809  ->  "minus two three point eight zero nine"
//	1E+15    ->  "one E plus one five"
//
// NaN and the infinities are rendered as whole names rather than spelled.
// No package-level culture exists; every call names the Culture it uses.
package words
