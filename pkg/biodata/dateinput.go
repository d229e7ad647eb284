package biodata

import "github.com/dmitrymomot/biodata/pkg/sanitizer"

var birthDateDigits = sanitizer.Compose(sanitizer.DigitsOnly, sanitizer.Limit(8))

// FormatBirthDateInput rewrites free-form input into the YYYY-MM-DD shape as the
// user types. Non-digits are dropped, at most eight digits are kept and dashes
// are inserted after the year and the month. The result is stable when fed back.
func FormatBirthDateInput(raw string) string {
	d := birthDateDigits(raw)
	switch {
	case len(d) <= 4:
		return d
	case len(d) <= 6:
		return d[:4] + "-" + d[4:]
	default:
		return d[:4] + "-" + d[4:6] + "-" + d[6:]
	}
}

// NormalizeControl applies the as-you-type formatting of f to raw.
// Only the birth date is formatted; other values pass through.
func NormalizeControl(f Field, raw string) string {
	if f == BirthDate {
		return FormatBirthDateInput(raw)
	}
	return raw
}
