// Package field implements the validation lifecycle of a single text-input
// field: the State that stores the outcome of the last validation, and the
// Controller that decides when to validate.
//
// # Lifecycle
//
// A State starts Untouched (valid, never validated). Each Validate call moves
// it to Valid or Invalid depending on the first failing rule; Reset moves it
// back to Untouched from anywhere. There is no terminal phase.
//
// # Triggers
//
// The host UI forwards two kinds of events to the Controller:
//
//   - TextChanged, on every keystroke. It validates only when the field runs
//     in real-time mode or has already been validated once, so users are not
//     shown errors before they finish their first attempt. Rules built with
//     validator.CommitOnly are skipped on these passes unless real-time mode
//     is on.
//   - Commit, when the field loses focus. Non-empty text is validated with
//     every rule.
//
// After each validation the observer registered with WithObserver receives
// the new validity, and a Change is published on the Feed given to WithFeed.
//
// # Usage
//
//	email := field.NewController(
//	    validator.Rules(validator.Required(), validator.Email()),
//	    field.WithName("email"),
//	    field.WithHelperText("We never share it"),
//	    field.WithObserver(func(valid bool) { submit.SetEnabled(valid) }),
//	)
//
//	email.Commit(ctx, "a@b")
//	msg, isError := email.Message() // "Please enter a valid email address", true
//
// # Concurrency
//
// A field is meant to be driven from the goroutine that owns its UI. State
// still guards its outcome with a mutex so that hosts which validate
// elsewhere never observe a partial update.
package field
