package decimal

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// FromString parses decimal from string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// FromNumber parses a JSON number without going through float64
func FromNumber(n json.Number) (decimal.Decimal, error) {
	return decimal.NewFromString(n.String())
}

// Canonical renders a number the way the accounting server expects it:
// plain digits, '.' as separator, no exponent, no trailing zeros.
func Canonical(d decimal.Decimal) string {
	return d.String()
}

// Normalize returns the canonical form of s when s is numeric, and s
// unchanged otherwise
func Normalize(s string) string {
	d, err := FromString(s)
	if err != nil {
		return s
	}
	return Canonical(d)
}

// Mul multiplies two decimals, rounds to 2 places
func Mul(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b).Round(2)
}

// LineValue computes quantity * unit price from their string forms.
// ok is false when either side is missing or not numeric.
func LineValue(cant, pret *string) (value decimal.Decimal, ok bool) {
	if cant == nil || pret == nil {
		return Zero, false
	}
	q, err := FromString(*cant)
	if err != nil {
		return Zero, false
	}
	p, err := FromString(*pret)
	if err != nil {
		return Zero, false
	}
	return Mul(q, p), true
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// RoundBani rounds to 2 decimals (1 leu = 100 bani)
func RoundBani(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
