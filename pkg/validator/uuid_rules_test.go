package validator_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

func TestUUID(t *testing.T) {
	r := validator.UUID()
	assert.Equal(t, "Please enter a valid UUID", r.Message())

	id := uuid.NewString()
	assert.True(t, r.Check(id))
	assert.True(t, r.Check(strings.ToUpper(id)))
	assert.True(t, r.Check(uuid.Nil.String()))

	for _, s := range []string{
		"",
		"not-a-uuid",
		"{" + id + "}",
		"urn:uuid:" + id,
		strings.ReplaceAll(id, "-", ""),
		id[:35] + "g",
	} {
		assert.False(t, r.Check(s), "uuid should be invalid: %s", s)
	}
}

func TestUUIDVersion(t *testing.T) {
	r := validator.UUIDVersion(4)
	assert.Equal(t, "Please enter a valid version 4 UUID", r.Message())

	assert.True(t, r.Check(uuid.New().String()))
	assert.False(t, r.Check(uuid.NewSHA1(uuid.NameSpaceDNS, []byte("example.com")).String()))
	assert.False(t, r.Check("garbage"))

	v7, err := uuid.NewV7()
	assert.NoError(t, err)
	assert.True(t, validator.UUIDVersion(7).Check(v7.String()))
}
