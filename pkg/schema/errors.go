package schema

import "errors"

var (
	// ErrInvalidDocument is returned when a document cannot be decoded or
	// fails structural checks.
	ErrInvalidDocument = errors.New("invalid field schema")

	// ErrUnknownRuleKind is returned for a rule kind the catalog does not know.
	ErrUnknownRuleKind = errors.New("unknown rule kind")

	// ErrInvalidRule is returned when a pattern or expression rule does not compile.
	ErrInvalidRule = errors.New("invalid rule definition")
)
