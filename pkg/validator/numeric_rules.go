package validator

import (
	"math"
	"strconv"
)

const msgNumeric = "Only numbers are allowed"

// Numeric accepts any finite real number: negatives, decimals and exponent
// notation included. Keyboard hints elsewhere do not narrow it to integers.
func Numeric(opts ...RuleOption) Rule {
	return NewRule(func(text string) bool {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return false
		}
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	}, msgNumeric, opts...)
}
