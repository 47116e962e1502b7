// Package logger builds *slog.Logger values with functional options and
// provides attribute helpers so field validation logs use consistent keys.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "fieldcheck"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Debug("field validated", logger.Field("email"), logger.Valid(false))
//
// Options:
//
//   - WithEnvironment : defaults per environment (text/debug or json/info).
//   - WithFormat / WithLevel / WithOutput : override individual settings.
//   - WithAttr : static attributes on every record.
//   - WithContextExtractors / WithContextValue : attributes read from the
//     context given to the *Context logging methods.
//
// Attribute helpers that take an optional value (Error, Field, Violation)
// return an empty slog.Attr when there is nothing to record, which slog
// handlers drop, so callers can pass them unconditionally.
package logger
