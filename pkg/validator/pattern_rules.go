package validator

import (
	"fmt"
	"regexp"
)

// Matches validates value against a precompiled pattern.
// Patterns are compiled once by the caller; description names the expected
// shape in the default message.
func Matches(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must match %s pattern", description),
			Code:    "pattern",
			Params: map[string]any{
				"field":       field,
				"pattern":     re.String(),
				"description": description,
			},
		},
	}
}

// MatchesRegex compiles pattern on each call - prefer Matches on hot paths.
func MatchesRegex(field, value string, pattern string, description string) Rule {
	return Matches(field, value, regexp.MustCompile(pattern), description)
}
