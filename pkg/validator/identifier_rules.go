package validator

import (
	"regexp"
	"strings"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Slug accepts URL-safe slugs: lowercase letters and digits in groups joined
// by single hyphens.
func Slug(opts ...RuleOption) Rule {
	return NewRule(slugRegex.MatchString, "Only lowercase letters, numbers and single hyphens are allowed", opts...)
}

// DomainName accepts host names with at least two labels and an alphabetic TLD.
func DomainName(opts ...RuleOption) Rule {
	return NewRule(isDomainName, "Please enter a valid domain name", opts...)
}

func isDomainName(text string) bool {
	if text == "" || len(text) > 253 {
		return false
	}

	labels := strings.Split(text, ".")
	if len(labels) < 2 {
		return false
	}

	for i, label := range labels {
		if len(label) == 0 || len(label) > 63 {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, c := range label {
			if !isASCIILetter(c) && !(c >= '0' && c <= '9') && c != '-' {
				return false
			}
		}

		if i == len(labels)-1 {
			if len(label) < 2 {
				return false
			}
			for _, c := range label {
				if !isASCIILetter(c) {
					return false
				}
			}
		}
	}
	return true
}

func isASCIILetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
