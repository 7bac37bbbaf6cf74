package words

import (
	"strings"

	apperrors "github.com/agbru/numlab/internal/errors"
)

// Culture holds the symbols and layout rules used to format numbers.
type Culture struct {
	Name             string
	DecimalSeparator string
	NegativeSign     string
	PositiveSign     string
	ExponentSymbol   string

	// Fixed notation is used when the decimal exponent lies in
	// [MinFixedExponent, MaxFixedExponent]; otherwise the value is
	// written in scientific notation.
	MinFixedExponent int
	MaxFixedExponent int

	// MinExponentDigits pads the scientific exponent with leading zeros.
	MinExponentDigits int
}

// InvariantCulture is the default culture.
var InvariantCulture = Culture{
	Name:              "en-US",
	DecimalSeparator:  ".",
	NegativeSign:      "-",
	PositiveSign:      "+",
	ExponentSymbol:    "E",
	MinFixedExponent:  -4,
	MaxFixedExponent:  14,
	MinExponentDigits: 2,
}

var cultures = map[string]Culture{
	"en-us":     InvariantCulture,
	"invariant": InvariantCulture,
	"fr-fr":     withSeparator(InvariantCulture, "fr-FR", ","),
	"de-de":     withSeparator(InvariantCulture, "de-DE", ","),
}

func withSeparator(base Culture, name, sep string) Culture {
	base.Name = name
	base.DecimalSeparator = sep
	return base
}

// LookupCulture resolves a culture by name, case-insensitively. An empty
// name selects InvariantCulture.
func LookupCulture(name string) (Culture, error) {
	if name == "" {
		return InvariantCulture, nil
	}
	c, ok := cultures[strings.ToLower(name)]
	if !ok {
		return Culture{}, apperrors.InvalidArgument("culture", "unknown culture %q (available: %s)", name, strings.Join(CultureNames(), ", "))
	}
	return c, nil
}

// CultureNames lists the names accepted by LookupCulture.
func CultureNames() []string {
	return []string{"en-US", "invariant", "fr-FR", "de-DE"}
}
