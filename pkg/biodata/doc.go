// Package biodata validates the fields of a biodata (matrimonial profile) form.
//
// The package holds the field rule table, the message catalog, the birth date
// formatter and the photo type check. It performs no I/O: page effects go
// through the Presenter port, so the rules are usable from an HTTP binding, a
// CLI or a test alike.
//
// Basic usage:
//
//	v := biodata.New()
//	r := v.ValidateField(biodata.Contact, "01900000000", true)
//	// r.Valid == true
//
//	res := v.ValidateForm(biodata.Controls(values))
//	if !res.Valid {
//		// res.FocusTarget is the first invalid field
//	}
//
// Values are trimmed with browser whitespace semantics and lengths are
// counted in UTF-16 code units, so results match what the page computes for
// the same input.
//
// The birth date rule compares against midnight of the current day in the
// clock's location. Use WithClock to pin the clock in tests.
package biodata
