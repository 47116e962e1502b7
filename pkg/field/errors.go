package field

import "errors"

var (
	// ErrUnknownTrigger is returned by Fire for triggers it has no transition for.
	ErrUnknownTrigger = errors.New("unknown trigger")

	// ErrFeedClosed is returned when publishing to a closed feed.
	ErrFeedClosed = errors.New("feed is closed")
)
