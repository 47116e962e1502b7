package validator

import (
	"fmt"
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

const msgRequired = "This field is required"

// Length counts user-perceived characters (extended grapheme clusters), so
// "é" written with a combining accent or a flag emoji counts as one.
func Length(text string) int {
	n := 0
	tokens := graphemes.FromString(text)
	for tokens.Next() {
		n++
	}
	return n
}

// Required rejects text that is empty once surrounding whitespace is trimmed.
func Required(opts ...RuleOption) Rule {
	return NewRule(func(text string) bool {
		return strings.TrimSpace(text) != ""
	}, msgRequired, opts...)
}

func MinLength(n int, opts ...RuleOption) Rule {
	return NewRule(func(text string) bool {
		return Length(text) >= n
	}, fmt.Sprintf("Must be at least %d characters long", n), opts...)
}

func MaxLength(n int, opts ...RuleOption) Rule {
	return NewRule(func(text string) bool {
		return Length(text) <= n
	}, fmt.Sprintf("Must be no more than %d characters long", n), opts...)
}
