package logger

import "log/slog"

// Error records err under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a field name under the key "field".
// If name is empty, it returns an empty Attr.
func Field(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("field", name)
}

// FieldID records a field instance identifier under the key "field_id".
func FieldID(id string) slog.Attr {
	return slog.String("field_id", id)
}

// Trigger records what caused a validation under the key "trigger".
func Trigger(name string) slog.Attr {
	return slog.String("trigger", name)
}

// Valid records a validation result under the key "valid".
func Valid(valid bool) slog.Attr {
	return slog.Bool("valid", valid)
}

// Violation records a failed rule's message under the key "violation".
// If msg is empty, it returns an empty Attr.
func Violation(msg string) slog.Attr {
	if msg == "" {
		return slog.Attr{}
	}
	return slog.String("violation", msg)
}

// Schema records a schema file path under the key "schema".
func Schema(path string) slog.Attr {
	return slog.String("schema", path)
}
