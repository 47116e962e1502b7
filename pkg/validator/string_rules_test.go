package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

func TestLength(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "ascii", text: "hello", want: 5},
		{name: "precomposed accent", text: "h\u00e9llo", want: 5},
		{name: "combining accent", text: "e\u0301", want: 1},
		{name: "flag emoji", text: "🇩🇪", want: 1},
		{name: "cjk", text: "世界", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.Length(tt.text))
		})
	}
}

func TestRequired(t *testing.T) {
	r := validator.Required()
	assert.Equal(t, "This field is required", r.Message())

	t.Run("accepts text with content", func(t *testing.T) {
		for _, s := range []string{"a", "  a  ", "0"} {
			assert.True(t, r.Check(s), "should accept %q", s)
		}
	})

	t.Run("rejects empty and whitespace only text", func(t *testing.T) {
		for _, s := range []string{"", " ", "\t\n", "   \r\n "} {
			assert.False(t, r.Check(s), "should reject %q", s)
		}
	})
}

func TestMinLength(t *testing.T) {
	r := validator.MinLength(3)
	assert.Equal(t, "Must be at least 3 characters long", r.Message())

	assert.False(t, r.Check(""))
	assert.False(t, r.Check("ab"))
	assert.True(t, r.Check("abc"))
	assert.True(t, r.Check("abcdef"))
	assert.False(t, r.Check("e\u0301e\u0301"), "combining sequences count once")
}

func TestMaxLength(t *testing.T) {
	r := validator.MaxLength(5)
	assert.Equal(t, "Must be no more than 5 characters long", r.Message())

	assert.True(t, r.Check(""))
	assert.True(t, r.Check("abcde"))
	assert.False(t, r.Check("abcdef"))
	assert.True(t, r.Check("🇩🇪🇫🇷🇮🇹🇪🇸🇵🇹"), "five flags are five characters")
}
