package validator

import (
	"fmt"
	"time"
)

// DateLayout is the layout used when none is given: ISO 8601 calendar dates.
const DateLayout = time.DateOnly

const msgDate = "Please enter a valid date"

// Date accepts text that parses with layout, or DateLayout when layout is empty.
func Date(layout string, opts ...RuleOption) Rule {
	layout = dateLayout(layout)
	return NewRule(func(text string) bool {
		_, err := time.Parse(layout, text)
		return err == nil
	}, msgDate, opts...)
}

// DateBetween accepts dates in layout that fall within [start, end].
// Either bound may be zero to leave that side open.
func DateBetween(layout string, start, end time.Time, opts ...RuleOption) Rule {
	layout = dateLayout(layout)
	return NewRule(func(text string) bool {
		t, err := time.Parse(layout, text)
		if err != nil {
			return false
		}
		if !start.IsZero() && t.Before(start) {
			return false
		}
		if !end.IsZero() && t.After(end) {
			return false
		}
		return true
	}, dateRangeMessage(layout, start, end), opts...)
}

func dateLayout(layout string) string {
	if layout == "" {
		return DateLayout
	}
	return layout
}

func dateRangeMessage(layout string, start, end time.Time) string {
	switch {
	case start.IsZero() && end.IsZero():
		return msgDate
	case start.IsZero():
		return fmt.Sprintf("Must be on or before %s", end.Format(layout))
	case end.IsZero():
		return fmt.Sprintf("Must be on or after %s", start.Format(layout))
	default:
		return fmt.Sprintf("Must be between %s and %s", start.Format(layout), end.Format(layout))
	}
}
