// Package validator provides small, composable validation rules.
//
// A Rule pairs a lazily evaluated Check with the ValidationError reported
// when the check fails. Rule constructors take the field name and the value
// and return a Rule; nothing is evaluated until Apply, First or the rule's
// own Check runs it. The package holds no state and is safe for concurrent use.
//
// String lengths are measured in UTF-16 code units (see UTF16Len) so that a
// rule agrees with the length a browser reports for the same input.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.MinLen("name", name, 3),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // ...
//	    }
//	}
//
// When only the first problem matters, as for inline field feedback, use First:
//
//	if verr, ok := validator.First(rules...); !ok {
//	    show(verr.Message)
//	}
//
// Rules can be merged into one with All and relabelled with WithMessage, which
// is how a per-field message table is attached to generic rules.
package validator
