package validator

import (
	"errors"
	"slices"
)

// Predicate reports whether text satisfies a rule.
// Predicates must be pure, deterministic and fast. A panicking predicate is a
// bug in the code that supplied it and is never recovered here.
type Predicate func(text string) bool

// Rule pairs a predicate with the message shown when the predicate fails.
// Rules are plain values; once built they cannot be changed, only replaced.
type Rule struct {
	check        Predicate
	message      string
	whileEditing bool
}

// RuleOption adjusts a rule while it is being built.
type RuleOption func(*Rule)

// WhileEditing controls whether the rule runs on keystroke-driven passes.
// Rules run while editing by default.
func WhileEditing(enabled bool) RuleOption {
	return func(r *Rule) { r.whileEditing = enabled }
}

// CommitOnly limits the rule to commit passes unless the field validates in real time.
func CommitOnly() RuleOption {
	return WhileEditing(false)
}

// WithMessage replaces the rule's failure message.
func WithMessage(message string) RuleOption {
	return func(r *Rule) { r.message = message }
}

// NewRule builds a rule from a predicate and a failure message.
// Empty messages are accepted. Panics if check is nil.
func NewRule(check Predicate, message string, opts ...RuleOption) Rule {
	if check == nil {
		panic("validator: rule predicate cannot be nil")
	}

	r := Rule{
		check:        check,
		message:      message,
		whileEditing: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&r)
		}
	}
	return r
}

// Custom is an alias for NewRule, used for inline rules next to catalog ones.
func Custom(check Predicate, message string, opts ...RuleOption) Rule {
	return NewRule(check, message, opts...)
}

// Check evaluates the rule against text. The zero Rule accepts everything.
func (r Rule) Check(text string) bool {
	if r.check == nil {
		return true
	}
	return r.check(text)
}

func (r Rule) Message() string {
	return r.message
}

func (r Rule) AppliesWhileEditing() bool {
	return r.whileEditing
}

// RuleSet is an ordered list of rules. Order is evaluation order.
type RuleSet []Rule

// Rules builds a RuleSet that does not share storage with the arguments.
func Rules(rules ...Rule) RuleSet {
	return slices.Clone(RuleSet(rules))
}

// With returns a new set with rules appended; the receiver is left untouched.
func (rs RuleSet) With(rules ...Rule) RuleSet {
	out := make(RuleSet, 0, len(rs)+len(rules))
	out = append(out, rs...)
	return append(out, rules...)
}

// Pass describes the kind of validation pass being run.
type Pass struct {
	// Editing is true for keystroke-driven passes and false for commits.
	Editing bool
	// RealTime makes every rule apply on keystroke passes.
	RealTime bool
}

func (p Pass) skips(r Rule) bool {
	return p.Editing && !r.whileEditing && !p.RealTime
}

// Violation is the failure of a single rule. It is data, not a panic:
// callers store it and show Message to the user.
type Violation struct {
	Message string
	// Index is the position of the failing rule in its set.
	Index int
}

func (v *Violation) Error() string {
	return v.Message
}

// Evaluate runs rules against text in order and returns the first violation,
// or nil when every applicable rule passes. Rules after the first failure are
// not evaluated.
func Evaluate(rules RuleSet, text string, pass Pass) *Violation {
	for i, rule := range rules {
		if pass.skips(rule) {
			continue
		}
		if !rule.Check(text) {
			return &Violation{Message: rule.message, Index: i}
		}
	}
	return nil
}

// Apply runs a commit pass over rules and returns the first violation as an error.
func Apply(text string, rules ...Rule) error {
	if v := Evaluate(rules, text, Pass{}); v != nil {
		return v
	}
	return nil
}

// ExtractViolation returns the violation wrapped in err, if any.
func ExtractViolation(err error) (*Violation, bool) {
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

func IsViolation(err error) bool {
	_, ok := ExtractViolation(err)
	return ok
}
