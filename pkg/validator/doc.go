// Package validator provides the rules that a form field checks its text
// against, and the first-failure evaluation used to run them.
//
// A Rule pairs a pure predicate over the field's text with a human-readable
// failure message and a flag saying whether the rule also runs while the user
// is still typing. Rules are immutable values; a RuleSet is an ordered slice of
// them and its order is part of the configuration: evaluation stops at the
// first failing rule, so the most basic constraint (usually Required) should
// come first.
//
// # Catalog
//
// Ready-made constructors cover the common cases, each with a default message
// that can be replaced with WithMessage:
//
//   - Required, MinLength, MaxLength (string_rules.go)
//   - Email, PhoneNumber, RegionalPhoneNumber, URL (format_rules.go)
//   - Alphanumeric, Alphabetic, Matches (pattern_rules.go)
//   - Numeric (numeric_rules.go)
//   - Password (password_rules.go)
//   - Expression, for CEL predicates over "text" (expression_rules.go)
//   - OneOf, OneOfFold, NoneOf (choice_rules.go)
//   - Slug, DomainName (identifier_rules.go)
//   - UUID, UUIDVersion (uuid_rules.go)
//   - CreditCard, NumberRange (financial_rules.go)
//   - Date, DateBetween (date_rules.go)
//
// All pattern-based rules match the whole text, never a substring. Lengths are
// counted in user-perceived characters.
//
// # Usage
//
//	rules := validator.Rules(
//	    validator.Required(),
//	    validator.MinLength(3),
//	    validator.Custom(func(s string) bool { return s != "admin" }, "Name is reserved"),
//	)
//
//	if v := validator.Evaluate(rules, text, validator.Pass{}); v != nil {
//	    fmt.Println(v.Message)
//	}
//
// # Error Handling
//
// A failing rule is reported as a *Violation, which also implements error so
// Apply can return it. Violations are ordinary data. Predicates must never
// panic; if one does, the panic propagates to the caller unchanged.
package validator
