package validator

import "errors"

// Errors returned when a rule cannot be built. Rule failures themselves are
// reported as *Violation values.
var (
	// ErrInvalidPattern is returned when a custom pattern does not compile.
	ErrInvalidPattern = errors.New("invalid rule pattern")

	// ErrInvalidExpression is returned when a rule expression does not compile
	// or does not evaluate to a bool.
	ErrInvalidExpression = errors.New("invalid rule expression")
)
