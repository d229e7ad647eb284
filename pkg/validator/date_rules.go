package validator

import (
	"fmt"
	"time"
)

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DateOnOrBefore validates that value, parsed with layout in limit's location,
// is not after limit. Unparsable values fail.
func DateOnOrBefore(field, value, layout string, limit time.Time) Rule {
	return Rule{
		Check: func() bool {
			d, err := time.ParseInLocation(layout, value, limit.Location())
			if err != nil {
				return false
			}
			return !d.After(limit)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("date must be on or before %s", limit.Format("2006-01-02")),
			Code:    "date_on_or_before",
			Params: map[string]any{
				"field": field,
				"limit": limit.Format("2006-01-02"),
			},
		},
	}
}

// DateYearAtLeast validates that value, parsed with layout, falls in year or later.
// Unparsable values fail.
func DateYearAtLeast(field, value, layout string, year int) Rule {
	return Rule{
		Check: func() bool {
			d, err := time.Parse(layout, value)
			if err != nil {
				return false
			}
			return d.Year() >= year
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("year must be %d or later", year),
			Code:    "date_min_year",
			Params: map[string]any{
				"field": field,
				"year":  year,
			},
		},
	}
}
