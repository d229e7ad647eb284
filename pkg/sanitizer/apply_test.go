package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/biodata/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "  hello  ",
			transforms: []func(string) string{sanitizer.Trim},
			expected:   "hello",
		},
		{
			name:       "applies transforms in sequence",
			input:      "1999-12-31T10:00",
			transforms: []func(string) string{sanitizer.DigitsOnly, sanitizer.Limit(8)},
			expected:   "19991231",
		},
		{
			name:       "order matters",
			input:      "1999-12-31",
			transforms: []func(string) string{sanitizer.Limit(8), sanitizer.DigitsOnly},
			expected:   "199912",
		},
		{
			name:       "handles empty transforms slice",
			input:      "hello world",
			transforms: []func(string) string{},
			expected:   "hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Apply(tt.input, tt.transforms...))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	normalize := sanitizer.Compose(sanitizer.Trim, strings.ToUpper)
	assert.Equal(t, "AB+", normalize(" ab+ "))
	assert.Equal(t, "", normalize("   "))

	double := sanitizer.Compose(func(n int) int { return n * 2 }, func(n int) int { return n + 1 })
	assert.Equal(t, 7, double(3))
}
