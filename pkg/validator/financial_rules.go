package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CreditCard accepts 13 to 19 digit card numbers that pass the Luhn checksum.
// Spaces and dashes between digit groups are ignored.
func CreditCard(opts ...RuleOption) Rule {
	return NewRule(isCardNumber, "Please enter a valid card number", opts...)
}

func isCardNumber(text string) bool {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(text)
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// NumberRange accepts numeric text whose value lies in [lo, hi].
// Pass math.Inf for an open side.
func NumberRange(lo, hi float64, opts ...RuleOption) Rule {
	return NewRule(func(text string) bool {
		v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil || math.IsNaN(v) {
			return false
		}
		return v >= lo && v <= hi
	}, rangeMessage(lo, hi), opts...)
}

func rangeMessage(lo, hi float64) string {
	switch {
	case math.IsInf(lo, -1) && math.IsInf(hi, 1):
		return msgNumeric
	case math.IsInf(lo, -1):
		return fmt.Sprintf("Must be at most %g", hi)
	case math.IsInf(hi, 1):
		return fmt.Sprintf("Must be at least %g", lo)
	default:
		return fmt.Sprintf("Must be between %g and %g", lo, hi)
	}
}
