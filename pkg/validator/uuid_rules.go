package validator

import (
	"fmt"

	"github.com/google/uuid"
)

const msgUUID = "Please enter a valid UUID"

// UUID accepts the canonical 36 character form only; uuid.Parse alone would
// also take the braced and urn: forms.
func UUID(opts ...RuleOption) Rule {
	return NewRule(func(text string) bool {
		_, ok := parseCanonicalUUID(text)
		return ok
	}, msgUUID, opts...)
}

// UUIDVersion accepts canonical UUIDs of the given version.
func UUIDVersion(version int, opts ...RuleOption) Rule {
	return NewRule(func(text string) bool {
		id, ok := parseCanonicalUUID(text)
		return ok && id.Version() == uuid.Version(version)
	}, fmt.Sprintf("Please enter a valid version %d UUID", version), opts...)
}

func parseCanonicalUUID(text string) (uuid.UUID, bool) {
	// Check the shape before parsing.
	if len(text) != 36 || text[8] != '-' || text[13] != '-' || text[18] != '-' || text[23] != '-' {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(text)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
