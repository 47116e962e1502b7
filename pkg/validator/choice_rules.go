package validator

import (
	"slices"
	"strings"
)

const msgNotAllowed = "This value is not allowed"

// OneOf accepts text equal to one of options.
func OneOf(options []string, opts ...RuleOption) Rule {
	allowed := slices.Clone(options)
	return NewRule(func(text string) bool {
		return slices.Contains(allowed, text)
	}, "Please choose one of: "+strings.Join(allowed, ", "), opts...)
}

// OneOfFold is OneOf with case-insensitive matching.
func OneOfFold(options []string, opts ...RuleOption) Rule {
	allowed := slices.Clone(options)
	return NewRule(func(text string) bool {
		return containsFold(allowed, text)
	}, "Please choose one of: "+strings.Join(allowed, ", "), opts...)
}

// NoneOf rejects text equal to any of forbidden, ignoring case.
// Reserved usernames are the typical use.
func NoneOf(forbidden []string, opts ...RuleOption) Rule {
	denied := slices.Clone(forbidden)
	return NewRule(func(text string) bool {
		return !containsFold(denied, text)
	}, msgNotAllowed, opts...)
}

func containsFold(values []string, text string) bool {
	return slices.ContainsFunc(values, func(v string) bool {
		return strings.EqualFold(v, text)
	})
}
