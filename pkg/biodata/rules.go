package biodata

import (
	"regexp"
	"time"

	"github.com/dmitrymomot/biodata/pkg/sanitizer"
	"github.com/dmitrymomot/biodata/pkg/validator"
)

const (
	isoDateLayout = "2006-01-02"
	minBirthYear  = 1900
)

// Patterns are compiled once. \s is spelled as the browser whitespace class.
var (
	fullNamePattern  = regexp.MustCompile(`^[A-Za-z][A-Za-z ]{2,49}$`)
	isoDatePattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	birthTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	heightPattern    = regexp.MustCompile(
		`(?i)^([3-7])` + ws + `*ft` + ws + `*([0-9]|1[01])` + ws + `*in$`,
	)
	siblingsPattern = regexp.MustCompile(
		`(?i)^(\d+)(` + ws + `*\(` + ws + `*\d+` + ws + `*Married` + ws + `*\))?$`,
	)
	contactPattern = regexp.MustCompile(`^(?:\+?88)?01[3-9]\d{8}$`)
)

const ws = sanitizer.BrowserSpaceClass

// ruleFunc builds the rule of one field for a trimmed value.
// now is the current time in the location the date rule is evaluated in.
type ruleFunc func(field, value string, now time.Time) validator.Rule

func minLength(n int) ruleFunc {
	return func(field, value string, _ time.Time) validator.Rule {
		return validator.MinLen(field, value, n)
	}
}

func pattern(re *regexp.Regexp, description string) ruleFunc {
	return func(field, value string, _ time.Time) validator.Rule {
		return validator.Matches(field, value, re, description)
	}
}

func pastBirthDate(field, value string, now time.Time) validator.Rule {
	return validator.All(
		validator.Matches(field, value, isoDatePattern, "YYYY-MM-DD"),
		validator.DateOnOrBefore(field, value, isoDateLayout, validator.StartOfDay(now)),
		validator.DateYearAtLeast(field, value, isoDateLayout, minBirthYear),
	)
}

func selected(field, value string, _ time.Time) validator.Rule {
	return validator.NotEmpty(field, value)
}

// rules is the field rule table. It is never mutated after init.
var rules = map[Field]ruleFunc{
	FullName:         pattern(fullNamePattern, "letters and spaces"),
	BirthDate:        pastBirthDate,
	BirthTime:        pattern(birthTimePattern, "HH:MM"),
	BirthPlace:       minLength(2),
	Religion:         minLength(2),
	Caste:            minLength(2),
	Height:           pattern(heightPattern, "N ft N in"),
	BloodGroup:       selected,
	Education:        minLength(2),
	Occupation:       minLength(2),
	FatherName:       minLength(2),
	FatherOccupation: minLength(2),
	MotherName:       minLength(2),
	Sisters:          pattern(siblingsPattern, "N or N (N Married)"),
	Brothers:         pattern(siblingsPattern, "N or N (N Married)"),
	Contact:          pattern(contactPattern, "mobile number"),
	Address:          minLength(10),
}

// HasRule reports whether f has an entry in the rule table.
func HasRule(f Field) bool {
	_, ok := rules[f]
	return ok
}
