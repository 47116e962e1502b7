package validator

import (
	"fmt"
	"strings"
)

const (
	passwordDigits       = "0123456789"
	passwordSpecialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`
)

// PasswordPolicy lists the requirements checked by Password.
type PasswordPolicy struct {
	MinLength           int
	RequireNumbers      bool
	RequireSpecialChars bool
}

// DefaultPasswordPolicy requires 8 characters, a digit and a special character.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:           8,
		RequireNumbers:      true,
		RequireSpecialChars: true,
	}
}

// Message names every requirement of the policy, met or not. Rule messages
// are fixed when the rule is built, so the text cannot depend on which
// requirement a given password misses.
func (p PasswordPolicy) Message() string {
	msg := fmt.Sprintf("Password must be at least %d characters long", p.MinLength)

	var extra []string
	if p.RequireNumbers {
		extra = append(extra, "a number")
	}
	if p.RequireSpecialChars {
		extra = append(extra, "a special character")
	}
	if len(extra) > 0 {
		msg += " and contain " + strings.Join(extra, " and ")
	}
	return msg
}

func (p PasswordPolicy) satisfied(text string) bool {
	if Length(text) < p.MinLength {
		return false
	}
	if p.RequireNumbers && !strings.ContainsAny(text, passwordDigits) {
		return false
	}
	if p.RequireSpecialChars && !strings.ContainsAny(text, passwordSpecialChars) {
		return false
	}
	return true
}

// Password checks text against policy as a single rule. Its message is
// policy.Message().
func Password(policy PasswordPolicy, opts ...RuleOption) Rule {
	return NewRule(policy.satisfied, policy.Message(), opts...)
}
