package validator

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// UTF16Len reports the length of s in UTF-16 code units, the unit browsers use
// for String.length and for the minlength/maxlength attributes.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		if utf16.RuneLen(r) == 2 {
			n += 2
			continue
		}
		n++
	}
	return n
}

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
			Code:    "required",
			Params:  map[string]any{"field": field},
		},
	}
}

// NotEmpty validates that a string is not the empty string.
// Unlike Required it does not trim; it is meant for values that were
// normalized before validation, such as a selected option.
func NotEmpty(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "a value must be selected",
			Code:    "not_empty",
			Params:  map[string]any{"field": field},
		},
	}
}

// MinLen validates the UTF-16 length of value is at least min.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return UTF16Len(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
			Code:    "min_length",
			Params: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxLen validates the UTF-16 length of value is at most max.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return UTF16Len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
			Code:    "max_length",
			Params: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}
