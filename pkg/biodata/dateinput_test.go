package biodata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/biodata/pkg/biodata"
)

func TestFormatBirthDateInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"2", "2"},
		{"2000", "2000"},
		{"20005", "2000-5"},
		{"200005", "2000-05"},
		{"2000052", "2000-05-2"},
		{"20000520", "2000-05-20"},
		{"2000052099", "2000-05-20"},
		{"2000-05-20", "2000-05-20"},
		{"2000/05/20", "2000-05-20"},
		{"20-05-2000", "2005-20-00"},
		{"abc", ""},
		{"২০০০", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got := biodata.FormatBirthDateInput(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, biodata.FormatBirthDateInput(got), "formatting is idempotent")
		})
	}
}

func TestNormalizeControl(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2000-05-20", biodata.NormalizeControl(biodata.BirthDate, "20000520"))
	assert.Equal(t, "20000520", biodata.NormalizeControl(biodata.Contact, "20000520"))
}
