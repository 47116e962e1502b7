package field

import "log/slog"

// Option configures a Controller.
type Option func(*Controller)

// WithName sets the name used in logs and published changes.
func WithName(name string) Option {
	return func(c *Controller) { c.name = name }
}

// WithRealTime validates on every keystroke instead of waiting for the first commit.
func WithRealTime(enabled bool) Option {
	return func(c *Controller) { c.realTime = enabled }
}

// WithHelperText sets the text shown while no error is present.
func WithHelperText(text string) Option {
	return func(c *Controller) { c.helperText = text }
}

// WithObserver registers the single callback told the resulting validity
// after each validation. A nil observer is ignored.
func WithObserver(fn func(valid bool)) Option {
	return func(c *Controller) {
		if fn != nil {
			c.observer = fn
		}
	}
}

// WithFeed publishes a Change to feed after each validation.
func WithFeed(feed *Feed) Option {
	return func(c *Controller) {
		if feed != nil {
			c.feed = feed
		}
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}
