package field

// Trigger is an input event from the host UI that may cause validation.
type Trigger string

const (
	// TriggerKeystroke fires on every text change while the user types.
	TriggerKeystroke Trigger = "keystroke"
	// TriggerCommit fires when the field loses focus or input is finalized.
	TriggerCommit Trigger = "commit"
)

func (t Trigger) String() string {
	return string(t)
}

// guard decides whether a trigger validates the given text.
type guard func(s *State, text string) bool

// transition describes what a trigger does once all its guards pass.
type transition struct {
	editing bool
	guards  []guard
}

var transitions = map[Trigger]transition{
	TriggerKeystroke: {editing: true, guards: []guard{liveValidation}},
	TriggerCommit:    {editing: false, guards: []guard{hasText}},
}

// liveValidation lets keystrokes validate in real-time mode, or once the
// field has been validated so the user sees the error clear as they fix it.
func liveValidation(s *State, _ string) bool {
	return s.RealTime() || s.HasBeenValidated()
}

// hasText skips commits of an empty field.
func hasText(_ *State, text string) bool {
	return text != ""
}

func (t transition) allowed(s *State, text string) bool {
	for _, g := range t.guards {
		if !g(s, text) {
			return false
		}
	}
	return true
}
