package biodata

import (
	"time"

	"github.com/dmitrymomot/biodata/pkg/sanitizer"
	"github.com/dmitrymomot/biodata/pkg/validator"
)

// Reason classifies the outcome of a field validation.
type Reason string

const (
	ReasonValid    Reason = "valid"
	ReasonRequired Reason = "required"
	ReasonRule     Reason = "rule"
	ReasonSkipped  Reason = "skipped"
)

// Result is the validation state of a single field.
// Message is empty when Valid is true.
type Result struct {
	Field   Field
	Valid   bool
	Message string
	Reason  Reason
}

// Control is a form control as the page submits it.
type Control struct {
	Field    Field
	Value    string
	Required bool
	File     bool
}

// IsFile reports whether the control is a file control.
func (c Control) IsFile() bool {
	return c.File || c.Field.IsFile()
}

// FormResult is the outcome of validating a whole form.
// FocusTarget is the first invalid field in document order, empty when Valid.
type FormResult struct {
	Valid       bool
	Results     []Result
	FocusTarget Field
}

// Invalid returns the failing results in document order.
func (r FormResult) Invalid() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Valid {
			out = append(out, res)
		}
	}
	return out
}

// Err returns the failures as validator.ValidationErrors, or nil when the
// form is valid. Code carries the Reason of each failing field.
func (r FormResult) Err() error {
	var errs validator.ValidationErrors
	for _, res := range r.Invalid() {
		errs.Add(validator.ValidationError{
			Field:   res.Field.String(),
			Message: res.Message,
			Code:    string(res.Reason),
		})
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Validator evaluates the field rule table.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	now      func() time.Time
	messages Messages
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock sets the time source of the birth date rule.
// The returned time's location defines "today".
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// WithMessages replaces the embedded message catalog.
func WithMessages(m Messages) Option {
	return func(v *Validator) {
		v.messages = m
	}
}

// New creates a Validator using the local clock and the embedded messages.
func New(opts ...Option) *Validator {
	v := &Validator{
		now:      time.Now,
		messages: DefaultMessages(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Messages returns the catalog the validator reports with.
func (v *Validator) Messages() Messages {
	return v.messages
}

// ValidateField validates the raw value of one field.
//
// File controls are always valid. The value is trimmed first; an empty
// required value reports the field's required message. Otherwise the field's
// rule, if it has one, decides. Fields without a rule are valid.
func (v *Validator) ValidateField(f Field, raw string, required bool) Result {
	return v.Check(Control{Field: f, Value: raw, Required: required})
}

// Check validates a single control.
func (v *Validator) Check(c Control) Result {
	if c.IsFile() {
		return Result{Field: c.Field, Valid: true, Reason: ReasonSkipped}
	}

	value := sanitizer.Trim(c.Value)
	if c.Required && value == "" {
		return Result{
			Field:   c.Field,
			Message: v.messages.RequiredMessage(c.Field),
			Reason:  ReasonRequired,
		}
	}

	build, ok := rules[c.Field]
	if !ok {
		return Result{Field: c.Field, Valid: true, Reason: ReasonValid}
	}

	rule := build(string(c.Field), value, v.now())
	if _, passed := validator.First(rule); !passed {
		return Result{
			Field:   c.Field,
			Message: v.messages.InvalidMessage(c.Field),
			Reason:  ReasonRule,
		}
	}

	return Result{Field: c.Field, Valid: true, Reason: ReasonValid}
}

// ValidateForm validates every non-file control. Controls are expected in
// document order; the first invalid one becomes the focus target.
// Every control is evaluated so that each field's state can be presented.
func (v *Validator) ValidateForm(controls []Control) FormResult {
	res := FormResult{
		Valid:   true,
		Results: make([]Result, 0, len(controls)),
	}

	for _, c := range controls {
		if c.IsFile() {
			continue
		}
		r := v.Check(c)
		res.Results = append(res.Results, r)
		if !r.Valid && res.Valid {
			res.Valid = false
			res.FocusTarget = c.Field
		}
	}

	return res
}

// Controls builds the form's value controls in document order from submitted
// values. Every field is required unless listed in optional.
func Controls(values map[Field]string, optional ...Field) []Control {
	skip := make(map[Field]bool, len(optional))
	for _, f := range optional {
		skip[f] = true
	}

	controls := make([]Control, 0, len(Fields))
	for _, f := range Fields {
		controls = append(controls, Control{
			Field:    f,
			Value:    values[f],
			Required: !skip[f],
		})
	}
	return controls
}
