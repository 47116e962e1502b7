package field

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Controller owns a field's State and decides when it validates.
// It knows nothing about rendering: the host UI reports text changes and
// commits, and reads back validity and the message to display.
type Controller struct {
	id         string
	name       string
	helperText string
	realTime   bool
	state      *State
	observer   func(valid bool)
	feed       *Feed
	logger     *slog.Logger
}

// NewController creates a controller validating text against rules.
func NewController(rules validator.RuleSet, opts ...Option) *Controller {
	c := &Controller{
		id:     uuid.NewString(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	c.state = NewState(rules, c.realTime)
	c.logger = c.logger.With(
		logger.Component("field"),
		logger.FieldID(c.id),
		logger.Field(c.name),
	)
	return c
}

// TextChanged handles a keystroke. The text is validated only in real-time
// mode or after the field has been validated once; before that, typing never
// shows an error. Reports whether validation ran.
func (c *Controller) TextChanged(ctx context.Context, text string) bool {
	ran, _ := c.Fire(ctx, TriggerKeystroke, text)
	return ran
}

// Commit handles focus loss. Non-empty text is validated with every rule.
// Reports whether validation ran.
func (c *Controller) Commit(ctx context.Context, text string) bool {
	ran, _ := c.Fire(ctx, TriggerCommit, text)
	return ran
}

// Fire runs trigger against text. When the trigger's guards allow it the
// state is validated and observers are notified. Reports whether validation ran.
func (c *Controller) Fire(ctx context.Context, trigger Trigger, text string) (bool, error) {
	t, ok := transitions[trigger]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownTrigger, trigger)
	}
	if !t.allowed(c.state, text) {
		return false, nil
	}

	out := c.state.validate(text, t.editing)
	c.notify(ctx, trigger, out)
	return true, nil
}

// notify runs after the outcome is stored, so observers always see the
// complete result of the validation that triggered them.
func (c *Controller) notify(ctx context.Context, trigger Trigger, out Outcome) {
	valid := out.Valid
	msg, _ := out.CurrentError()

	c.logger.DebugContext(ctx, "field validated",
		logger.Trigger(trigger.String()),
		logger.Valid(valid),
		logger.Violation(msg),
	)

	if c.observer != nil {
		c.observer(valid)
	}

	if c.feed != nil {
		err := c.feed.Publish(Change{
			FieldID: c.id,
			Field:   c.name,
			Trigger: trigger,
			Valid:   valid,
			Error:   msg,
		})
		if err != nil {
			c.logger.WarnContext(ctx, "failed to publish field change", logger.Error(err))
		}
	}
}

// Reset returns the field to its untouched state, e.g. when a form is cleared.
// Observers are not notified since nothing was validated.
func (c *Controller) Reset() {
	c.state.Reset()
}

// Message returns what the field should display under its input: the current
// error when there is one (isError true), otherwise the helper text.
func (c *Controller) Message() (text string, isError bool) {
	if msg, ok := c.state.CurrentError(); ok {
		return msg, true
	}
	return c.helperText, false
}

func (c *Controller) ID() string {
	return c.id
}

func (c *Controller) Name() string {
	return c.name
}

func (c *Controller) IsValid() bool {
	return c.state.IsValid()
}

func (c *Controller) HasBeenValidated() bool {
	return c.state.HasBeenValidated()
}

func (c *Controller) CurrentError() (string, bool) {
	return c.state.CurrentError()
}

// State exposes the underlying validation state.
func (c *Controller) State() *State {
	return c.state
}
