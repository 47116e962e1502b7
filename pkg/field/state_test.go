package field_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/field"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

func requiredMin3() validator.RuleSet {
	return validator.Rules(validator.Required(), validator.MinLength(3))
}

func TestNewState(t *testing.T) {
	s := field.NewState(requiredMin3(), false)

	assert.True(t, s.IsValid())
	assert.False(t, s.HasBeenValidated())
	assert.Empty(t, s.Errors())
	assert.Equal(t, field.Untouched, s.Phase())
	assert.False(t, s.RealTime())
	assert.Len(t, s.Rules(), 2)

	_, ok := s.CurrentError()
	assert.False(t, ok)
}

func TestState_Validate(t *testing.T) {
	t.Run("empty text fails required first", func(t *testing.T) {
		s := field.NewState(requiredMin3(), false)

		assert.False(t, s.Validate("", false))
		msg, ok := s.CurrentError()
		require.True(t, ok)
		assert.Equal(t, "This field is required", msg)
		assert.Equal(t, []string{"This field is required"}, s.Errors())
		assert.Equal(t, field.Invalid, s.Phase())
	})

	t.Run("short text fails min length", func(t *testing.T) {
		s := field.NewState(requiredMin3(), false)

		assert.False(t, s.Validate("ab", false))
		msg, _ := s.CurrentError()
		assert.Equal(t, "Must be at least 3 characters long", msg)
	})

	t.Run("valid text clears previous error", func(t *testing.T) {
		s := field.NewState(requiredMin3(), false)
		s.Validate("ab", false)

		assert.True(t, s.Validate("abc", false))
		assert.True(t, s.IsValid())
		assert.Empty(t, s.Errors())
		assert.Equal(t, field.Valid, s.Phase())
	})

	t.Run("marks the state as validated", func(t *testing.T) {
		s := field.NewState(nil, false)
		assert.True(t, s.Validate("anything", true))
		assert.True(t, s.HasBeenValidated())
	})

	t.Run("holds at most one error", func(t *testing.T) {
		s := field.NewState(validator.Rules(
			validator.Numeric(),
			validator.MinLength(10),
			validator.Email(),
		), false)

		s.Validate("abc", false)
		assert.Equal(t, []string{"Only numbers are allowed"}, s.Errors())
	})

	t.Run("is idempotent", func(t *testing.T) {
		s := field.NewState(requiredMin3(), false)

		first := s.Validate("ab", false)
		firstErr, _ := s.CurrentError()
		second := s.Validate("ab", false)
		secondErr, _ := s.CurrentError()

		assert.Equal(t, first, second)
		assert.Equal(t, firstErr, secondErr)
	})

	t.Run("editing pass skips commit only rules", func(t *testing.T) {
		s := field.NewState(validator.Rules(
			validator.Email(validator.CommitOnly()),
			validator.MaxLength(5),
		), false)

		assert.True(t, s.Validate("abc", true))
		assert.False(t, s.Validate("abc", false))
		msg, _ := s.CurrentError()
		assert.Equal(t, "Please enter a valid email address", msg)
	})

	t.Run("real time state runs commit only rules while editing", func(t *testing.T) {
		s := field.NewState(validator.Rules(validator.Email(validator.CommitOnly())), true)
		assert.False(t, s.Validate("abc", true))
	})

	t.Run("later rules never surface while an earlier one fails", func(t *testing.T) {
		s := field.NewState(validator.Rules(
			validator.MinLength(10),
			validator.Alphanumeric(),
		), false)

		for range 3 {
			s.Validate("a-b", false)
			msg, _ := s.CurrentError()
			assert.Equal(t, "Must be at least 10 characters long", msg)
		}
	})

	t.Run("panicking predicate propagates", func(t *testing.T) {
		s := field.NewState(validator.Rules(
			validator.NewRule(func(string) bool { panic("bad predicate") }, "never"),
		), false)

		assert.Panics(t, func() { s.Validate("x", false) })
	})
}

func TestState_Reset(t *testing.T) {
	t.Run("returns to untouched", func(t *testing.T) {
		s := field.NewState(requiredMin3(), true)
		s.Validate("", false)

		s.Reset()
		assert.True(t, s.IsValid())
		assert.False(t, s.HasBeenValidated())
		assert.Empty(t, s.Errors())
		assert.Equal(t, field.Untouched, s.Phase())
	})

	t.Run("is idempotent", func(t *testing.T) {
		s := field.NewState(requiredMin3(), false)
		s.Reset()
		s.Reset()

		assert.Equal(t, field.Outcome{Valid: true}, s.Snapshot())
	})

	t.Run("keeps configuration", func(t *testing.T) {
		s := field.NewState(requiredMin3(), true)
		s.Validate("abc", false)
		s.Reset()

		assert.True(t, s.RealTime())
		assert.Len(t, s.Rules(), 2)
		assert.False(t, s.Validate("", false))
	})
}

func TestState_Snapshot(t *testing.T) {
	s := field.NewState(requiredMin3(), false)
	s.Validate("ab", false)

	snap := s.Snapshot()
	assert.False(t, snap.Valid)
	assert.True(t, snap.Validated)
	assert.Equal(t, field.Invalid, snap.Phase())

	snap.Errors[0] = "tampered"
	msg, _ := s.CurrentError()
	assert.Equal(t, "Must be at least 3 characters long", msg)
}

func TestState_ConfigurationIsCopied(t *testing.T) {
	rules := requiredMin3()
	s := field.NewState(rules, false)

	rules[0] = validator.Email()
	assert.False(t, s.Validate("", false))
	msg, _ := s.CurrentError()
	assert.Equal(t, "This field is required", msg)
}

func TestState_ConcurrentReadersSeeWholeOutcomes(t *testing.T) {
	s := field.NewState(requiredMin3(), false)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				s.Validate("ab", false)
			} else {
				s.Validate("abcd", false)
			}
		}()
		go func() {
			defer wg.Done()
			snap := s.Snapshot()
			_, hasErr := snap.CurrentError()
			assert.Equal(t, !snap.Valid, hasErr)
		}()
	}
	wg.Wait()
}
