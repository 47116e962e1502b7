package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestField(t *testing.T) {
	attr := logger.Field("email")
	require.Equal(t, "field", attr.Key)
	assert.Equal(t, "email", attr.Value.String())

	assert.True(t, logger.Field("").Equal(slog.Attr{}))
}

func TestFieldID(t *testing.T) {
	attr := logger.FieldID("abc")
	require.Equal(t, "field_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())
}

func TestTrigger(t *testing.T) {
	attr := logger.Trigger("commit")
	require.Equal(t, "trigger", attr.Key)
	assert.Equal(t, "commit", attr.Value.String())
}

func TestValid(t *testing.T) {
	attr := logger.Valid(true)
	require.Equal(t, "valid", attr.Key)
	assert.Equal(t, slog.KindBool, attr.Value.Kind())
	assert.True(t, attr.Value.Bool())
}

func TestViolation(t *testing.T) {
	attr := logger.Violation("This field is required")
	require.Equal(t, "violation", attr.Key)
	assert.Equal(t, "This field is required", attr.Value.String())

	assert.True(t, logger.Violation("").Equal(slog.Attr{}))
}

func TestComponentAndSchema(t *testing.T) {
	assert.Equal(t, "component", logger.Component("field").Key)
	assert.Equal(t, "schema", logger.Schema("fields.yaml").Key)
	assert.Equal(t, "fields.yaml", logger.Schema("fields.yaml").Value.String())
}
