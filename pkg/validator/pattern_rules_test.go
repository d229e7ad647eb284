package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/biodata/pkg/validator"
)

func TestMatches(t *testing.T) {
	re := regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

	t.Run("accepts matching value", func(t *testing.T) {
		assert.True(t, validator.Matches("birthTime", "23:59", re, "HH:MM").Check())
	})

	t.Run("rejects non-matching value", func(t *testing.T) {
		rule := validator.Matches("birthTime", "24:00", re, "HH:MM")
		assert.False(t, rule.Check())
		assert.Equal(t, "must match HH:MM pattern", rule.Error.Message)
		assert.Equal(t, re.String(), rule.Error.Params["pattern"])
	})
}

func TestMatchesRegex(t *testing.T) {
	assert.True(t, validator.MatchesRegex("n", "123", `^\d+$`, "digits").Check())
	assert.False(t, validator.MatchesRegex("n", "12a", `^\d+$`, "digits").Check())
	assert.Panics(t, func() { validator.MatchesRegex("n", "", `(`, "broken") })
}
