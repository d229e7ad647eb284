package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/biodata/pkg/validator"
)

func TestUTF16Len(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"ab", 2},
		{"ঢাকা", 4},
		{"😀", 2},
		{"a😀b", 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, validator.UTF16Len(tt.in), "input %q", tt.in)
	}
}

func TestRequired(t *testing.T) {
	t.Run("passes for non-empty string", func(t *testing.T) {
		rule := validator.Required("address", "Dhaka")
		assert.True(t, rule.Check())
		assert.Equal(t, "address", rule.Error.Field)
		assert.Equal(t, "required", rule.Error.Code)
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		assert.False(t, validator.Required("address", " \t ").Check())
	})
}

func TestNotEmpty(t *testing.T) {
	assert.True(t, validator.NotEmpty("bloodGroup", "O+").Check())
	assert.True(t, validator.NotEmpty("bloodGroup", " ").Check())
	assert.False(t, validator.NotEmpty("bloodGroup", "").Check())
}

func TestMinLen(t *testing.T) {
	t.Run("boundary", func(t *testing.T) {
		assert.True(t, validator.MinLen("caste", "ab", 2).Check())
		assert.False(t, validator.MinLen("caste", "a", 2).Check())
	})

	t.Run("counts surrogate pairs as two", func(t *testing.T) {
		assert.True(t, validator.MinLen("caste", "😀", 2).Check())
	})

	t.Run("error metadata", func(t *testing.T) {
		rule := validator.MinLen("address", "", 10)
		assert.Equal(t, "must be at least 10 characters long", rule.Error.Message)
		assert.Equal(t, "min_length", rule.Error.Code)
		assert.Equal(t, 10, rule.Error.Params["min"])
	})
}

func TestMaxLen(t *testing.T) {
	assert.True(t, validator.MaxLen("n", "abc", 3).Check())
	assert.False(t, validator.MaxLen("n", "abcd", 3).Check())
}
