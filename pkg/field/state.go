package field

import (
	"slices"
	"sync"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Phase is the position of a field in its validation lifecycle.
type Phase string

const (
	// Untouched: never validated, or reset since. Reported as valid.
	Untouched Phase = "untouched"
	Valid     Phase = "valid"
	Invalid   Phase = "invalid"
)

func (p Phase) String() string {
	return string(p)
}

// Outcome is a consistent copy of a State at one point in time.
type Outcome struct {
	Valid     bool
	Validated bool
	Errors    []string
}

// CurrentError returns the first error message, if any.
func (o Outcome) CurrentError() (string, bool) {
	if len(o.Errors) == 0 {
		return "", false
	}
	return o.Errors[0], true
}

// Phase derives the lifecycle phase of the outcome.
func (o Outcome) Phase() Phase {
	switch {
	case !o.Validated:
		return Untouched
	case o.Valid:
		return Valid
	default:
		return Invalid
	}
}

// State holds a field's rules and the result of its most recent validation.
//
// Rules and the real-time flag are fixed at construction. The outcome is
// replaced as a whole on every Validate and Reset, so readers never see a
// half-applied update even when calls arrive from different goroutines.
type State struct {
	rules    validator.RuleSet
	realTime bool

	mu        sync.RWMutex
	valid     bool
	validated bool
	errors    []string
}

// NewState creates an untouched state for rules. With realTime set, every
// rule also runs on keystroke passes.
func NewState(rules validator.RuleSet, realTime bool) *State {
	return &State{
		rules:    validator.Rules(rules...),
		realTime: realTime,
		valid:    true,
	}
}

// Validate evaluates the rules against text and stores the outcome.
// isEditing marks keystroke-driven passes, during which commit-only rules are
// skipped unless the state validates in real time. Evaluation stops at the
// first failing rule. Returns the new validity.
func (s *State) Validate(text string, isEditing bool) bool {
	return s.validate(text, isEditing).Valid
}

func (s *State) validate(text string, isEditing bool) Outcome {
	v := validator.Evaluate(s.rules, text, validator.Pass{
		Editing:  isEditing,
		RealTime: s.realTime,
	})

	var errs []string
	if v != nil {
		errs = []string{v.Message}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.validated = true
	s.errors = errs
	s.valid = len(errs) == 0
	return Outcome{
		Valid:     s.valid,
		Validated: true,
		Errors:    slices.Clone(errs),
	}
}

// Reset returns the state to Untouched. Rules and the real-time flag are kept.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.valid = true
	s.validated = false
	s.errors = nil
}

func (s *State) IsValid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.valid
}

func (s *State) HasBeenValidated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.validated
}

// CurrentError returns the message of the rule that failed last time, if any.
func (s *State) CurrentError() (string, bool) {
	return s.Snapshot().CurrentError()
}

// Errors returns the failing messages of the last validation.
// It holds at most one entry because evaluation stops at the first failure.
func (s *State) Errors() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.errors)
}

func (s *State) Phase() Phase {
	return s.Snapshot().Phase()
}

// Snapshot copies the current outcome.
func (s *State) Snapshot() Outcome {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Outcome{
		Valid:     s.valid,
		Validated: s.validated,
		Errors:    slices.Clone(s.errors),
	}
}

func (s *State) RealTime() bool {
	return s.realTime
}

// Rules returns a copy of the configured rules.
func (s *State) Rules() validator.RuleSet {
	return validator.Rules(s.rules...)
}
