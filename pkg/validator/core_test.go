package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/biodata/pkg/validator"
)

func pass(field string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return true },
		Error: validator.ValidationError{Field: field, Message: "never"},
	}
}

func fail(field, msg string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{Field: field, Message: msg},
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("joins field messages", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
		assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "contact", Message: "a"})
	errs.Add(validator.ValidationError{Field: "address", Message: "b"})
	errs.Add(validator.ValidationError{Field: "contact", Message: "c"})

	assert.True(t, errs.Has("contact"))
	assert.False(t, errs.Has("caste"))
	assert.Equal(t, []string{"a", "c"}, errs.Get("contact"))
	assert.Equal(t, []string{"contact", "address"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Run("nil when every rule passes", func(t *testing.T) {
		assert.NoError(t, validator.Apply(pass("a"), pass("b")))
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(fail("a", "x"), pass("b"), fail("c", "y"))
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "a", verrs[0].Field)
		assert.Equal(t, "c", verrs[1].Field)
	})

	t.Run("extracts through wrapping", func(t *testing.T) {
		err := fmt.Errorf("profile: %w", validator.Apply(fail("a", "x")))
		assert.Len(t, validator.ExtractValidationErrors(err), 1)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("plain errors are not validation errors", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
		assert.False(t, validator.IsValidationError(nil))
	})
}

func TestFirst(t *testing.T) {
	t.Run("stops at the first failure", func(t *testing.T) {
		evaluated := false
		late := validator.Rule{
			Check: func() bool { evaluated = true; return false },
		}

		verr, ok := validator.First(pass("a"), fail("b", "first"), late)
		assert.False(t, ok)
		assert.Equal(t, "first", verr.Message)
		assert.False(t, evaluated)
	})

	t.Run("ok when all pass", func(t *testing.T) {
		verr, ok := validator.First(pass("a"))
		assert.True(t, ok)
		assert.Equal(t, validator.ValidationError{}, verr)
	})
}

func TestAll(t *testing.T) {
	assert.True(t, validator.All(pass("a"), pass("a")).Check())
	assert.False(t, validator.All(pass("a"), fail("a", "x")).Check())
	assert.Panics(t, func() { validator.All() })
}

func TestRule_WithMessage(t *testing.T) {
	original := fail("a", "default")
	relabelled := original.WithMessage("custom")

	assert.Equal(t, "custom", relabelled.Error.Message)
	assert.Equal(t, "default", original.Error.Message)
	assert.Equal(t, "a", relabelled.Error.Field)
}
