package validator

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	alphanumericRegex = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	alphabeticRegex   = regexp.MustCompile(`^[A-Za-z\s]+$`)
)

const (
	msgAlphanumeric = "Only letters and numbers are allowed"
	msgAlphabetic   = "Only letters are allowed"
)

func Alphanumeric(opts ...RuleOption) Rule {
	return NewRule(alphanumericRegex.MatchString, msgAlphanumeric, opts...)
}

// Alphabetic accepts ASCII letters and whitespace.
func Alphabetic(opts ...RuleOption) Rule {
	return NewRule(alphabeticRegex.MatchString, msgAlphabetic, opts...)
}

// Matches builds a rule from a custom regular expression. The pattern always
// has to match the whole text; anchors are added around it.
func Matches(pattern, message string, opts ...RuleOption) (Rule, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return Rule{}, errors.Join(fmt.Errorf("%w: %q", ErrInvalidPattern, pattern), err)
	}
	return NewRule(re.MatchString, message, opts...), nil
}

// MustMatch is like Matches but panics on an invalid pattern.
func MustMatch(pattern, message string, opts ...RuleOption) Rule {
	r, err := Matches(pattern, message, opts...)
	if err != nil {
		panic(err)
	}
	return r
}
