// Package sanitizer normalizes raw form input before it is validated.
//
// The helpers mirror what a browser does to a value: Trim strips the same
// whitespace set as String.prototype.trim, BrowserSpaceClass stands in for
// the browser's \s inside Go regular expressions, and DigitsOnly keeps ASCII
// digits the way /\D/g removal does. Transforms compose with Apply and Compose:
//
//	normalize := sanitizer.Compose(sanitizer.DigitsOnly, sanitizer.Limit(8))
//	normalize("2000/05/20 ") // "20000520"
//
// All helpers are pure and safe for concurrent use.
package sanitizer
