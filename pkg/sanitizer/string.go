package sanitizer

import (
	"strings"
	"unicode"
)

// IsBrowserSpace reports whether r is whitespace for String.prototype.trim
// and the \s regexp class in browsers. It differs from unicode.IsSpace in two
// places: U+0085 is not whitespace there, U+FEFF is.
func IsBrowserSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\uFEFF':
		return true
	}
	return unicode.IsSpace(r)
}

// Trim removes leading and trailing whitespace the way a browser trims a form value.
func Trim(s string) string {
	return strings.TrimFunc(s, IsBrowserSpace)
}

// DigitsOnly keeps ASCII digits 0-9 and drops everything else, including
// digits of other scripts.
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// MaxLength truncates a string to at most maxLen runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// Limit returns a MaxLength transform bound to maxLen, for use with Apply and Compose.
func Limit(maxLen int) func(string) string {
	return func(s string) string {
		return MaxLength(s, maxLen)
	}
}
