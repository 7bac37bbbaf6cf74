// Package ieee754 renders float64 values as their IEEE-754 binary64 bit
// pattern and parses such patterns back.
//
// The textual form is exactly 64 characters of '0' and '1', most significant
// bit first: 1 sign bit, 11 exponent bits, 52 mantissa bits.
package ieee754

import (
	"fmt"
	"math"
	"strings"

	apperrors "github.com/agbru/numlab/internal/errors"
)

// Binary64 layout.
const (
	Width        = 64
	ExponentBits = 11
	MantissaBits = 52

	exponentMask = 1<<ExponentBits - 1
	mantissaMask = 1<<MantissaBits - 1
)

// DoubleToIEEE754 returns the bit pattern of f, most significant bit first.
// The bits are reinterpreted, not converted, so every value including NaN
// payloads, infinities and negative zero has a distinct rendering.
func DoubleToIEEE754(f float64) string {
	u := math.Float64bits(f)
	var buf [Width]byte
	for i := Width - 1; i >= 0; i-- {
		buf[i] = '0' + byte(u&1)
		u >>= 1
	}
	return string(buf[:])
}

// ParseIEEE754 is the inverse of DoubleToIEEE754. The input must be exactly
// 64 characters of '0' or '1'.
func ParseIEEE754(s string) (float64, error) {
	if len(s) != Width {
		return 0, apperrors.InvalidArgument("bits", "must be exactly %d characters, got %d", Width, len(s))
	}
	var u uint64
	for i := 0; i < Width; i++ {
		switch s[i] {
		case '0':
			u <<= 1
		case '1':
			u = u<<1 | 1
		default:
			return 0, apperrors.InvalidArgument("bits", "invalid character %q at index %d", s[i], i)
		}
	}
	return math.Float64frombits(u), nil
}

// Layout is the decomposition of a binary64 value into its three fields.
type Layout struct {
	Sign     uint8  // 0 or 1
	Exponent uint16 // biased, 11 bits
	Mantissa uint64 // fraction, 52 bits
}

// Split decomposes f into its sign, biased exponent and mantissa fields.
func Split(f float64) Layout {
	u := math.Float64bits(f)
	return Layout{
		Sign:     uint8(u >> (Width - 1)),
		Exponent: uint16(u >> MantissaBits & exponentMask),
		Mantissa: u & mantissaMask,
	}
}

// Float64 reassembles the value described by the layout.
func (l Layout) Float64() float64 {
	u := uint64(l.Sign&1)<<(Width-1) |
		uint64(l.Exponent&exponentMask)<<MantissaBits |
		l.Mantissa&mantissaMask
	return math.Float64frombits(u)
}

// String renders the fields separated by spaces: "s eeeeeeeeeee mmm...".
func (l Layout) String() string {
	var sb strings.Builder
	sb.Grow(Width + 2)
	fmt.Fprintf(&sb, "%01b %0*b %0*b", l.Sign, ExponentBits, l.Exponent, MantissaBits, l.Mantissa)
	return sb.String()
}

// Kind classifies the value encoded by the layout.
func (l Layout) Kind() string {
	switch {
	case l.Exponent == exponentMask && l.Mantissa != 0:
		return "nan"
	case l.Exponent == exponentMask:
		return "infinity"
	case l.Exponent == 0 && l.Mantissa == 0:
		return "zero"
	case l.Exponent == 0:
		return "subnormal"
	}
	return "normal"
}
