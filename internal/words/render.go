package words

import (
	"math"
	"strconv"
	"strings"

	apperrors "github.com/agbru/numlab/internal/errors"
)

// Names used for values that are not spelled character by character.
const (
	NaNName              = "Nan"
	NegativeInfinityName = "NegativeInfinity"
	PositiveInfinityName = "PositiveInfinity"
)

var digitNames = [10]string{
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
}

// Format returns the shortest text that round-trips to x, laid out with the
// symbols of c.
func Format(x float64, c Culture) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return c.NegativeSign + "Infinity"
	}

	neg, digits, exp := decompose(x)

	var sb strings.Builder
	if neg {
		sb.WriteString(c.NegativeSign)
	}
	if exp >= c.MinFixedExponent && exp <= c.MaxFixedExponent {
		writeFixed(&sb, digits, exp, c)
	} else {
		writeScientific(&sb, digits, exp, c)
	}
	return sb.String()
}

// decompose splits x into its sign, significant digits and decimal exponent
// so that |x| = d.ddd * 10^exp. Negative zero has no sign.
func decompose(x float64) (neg bool, digits string, exp int) {
	if x == 0 {
		return false, "0", 0
	}
	s := strconv.FormatFloat(x, 'E', -1, 64)
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	mant, e, _ := strings.Cut(s, "E")
	exp, _ = strconv.Atoi(e)
	digits = strings.Replace(mant, ".", "", 1)
	return neg, digits, exp
}

func writeFixed(sb *strings.Builder, digits string, exp int, c Culture) {
	if exp < 0 {
		sb.WriteByte('0')
		sb.WriteString(c.DecimalSeparator)
		sb.WriteString(strings.Repeat("0", -exp-1))
		sb.WriteString(digits)
		return
	}
	intLen := exp + 1
	if len(digits) <= intLen {
		sb.WriteString(digits)
		sb.WriteString(strings.Repeat("0", intLen-len(digits)))
		return
	}
	sb.WriteString(digits[:intLen])
	sb.WriteString(c.DecimalSeparator)
	sb.WriteString(digits[intLen:])
}

func writeScientific(sb *strings.Builder, digits string, exp int, c Culture) {
	sb.WriteString(digits[:1])
	if len(digits) > 1 {
		sb.WriteString(c.DecimalSeparator)
		sb.WriteString(digits[1:])
	}
	sb.WriteString(c.ExponentSymbol)
	if exp < 0 {
		sb.WriteString(c.NegativeSign)
		exp = -exp
	} else {
		sb.WriteString(c.PositiveSign)
	}
	e := strconv.Itoa(exp)
	if pad := c.MinExponentDigits - len(e); pad > 0 {
		sb.WriteString(strings.Repeat("0", pad))
	}
	sb.WriteString(e)
}

// Render spells out x in words, one word per character of its formatted
// text, separated by single spaces.
func Render(x float64, c Culture) string {
	switch {
	case math.IsNaN(x):
		return NaNName
	case math.IsInf(x, 1):
		return PositiveInfinityName
	case math.IsInf(x, -1):
		return NegativeInfinityName
	}

	text := Format(x, c)
	words := make([]string, 0, len(text))
	for len(text) > 0 {
		var w string
		w, text = nextWord(text, c)
		words = append(words, w)
	}
	return strings.Join(words, " ")
}

// nextWord consumes one symbol from the front of text. Multi-byte culture
// symbols are matched before single digits.
func nextWord(text string, c Culture) (word, rest string) {
	symbols := [...]struct{ symbol, word string }{
		{c.ExponentSymbol, "E"},
		{c.DecimalSeparator, "point"},
		{c.NegativeSign, "minus"},
		{c.PositiveSign, "plus"},
	}
	for _, s := range symbols {
		if s.symbol != "" && strings.HasPrefix(text, s.symbol) {
			return s.word, text[len(s.symbol):]
		}
	}
	if ch := text[0]; ch >= '0' && ch <= '9' {
		return digitNames[ch-'0'], text[1:]
	}
	return text[:1], text[1:]
}

// RenderAll spells out every value in order.
func RenderAll(values []float64, c Culture) ([]string, error) {
	if values == nil {
		return nil, apperrors.NilArgument("values")
	}
	if len(values) == 0 {
		return nil, apperrors.InvalidArgument("values", "must contain at least one value")
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = Render(v, c)
	}
	return out, nil
}

// Renderer spells out values in a fixed culture. It satisfies
// transform.Transformer[float64, string].
type Renderer struct {
	Culture Culture
}

// NewRenderer returns a Renderer bound to c.
func NewRenderer(c Culture) Renderer {
	return Renderer{Culture: c}
}

// TransformTo renders x.
func (r Renderer) TransformTo(x float64) string {
	return Render(x, r.Culture)
}
