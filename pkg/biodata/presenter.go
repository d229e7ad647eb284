package biodata

// Presenter applies validation outcomes to the page.
// Implementations may buffer their effects; none of the methods report errors.
type Presenter interface {
	// SetFieldState marks f valid or invalid and shows message next to it.
	// message is empty for valid fields.
	SetFieldState(f Field, valid bool, message string)
	// Focus moves input focus to f.
	Focus(f Field)
	// Notify shows a one-off notice to the user.
	Notify(message string)
}

// Present validates one control and hands the outcome to p.
// File controls produce no presentation.
func (v *Validator) Present(p Presenter, c Control) Result {
	r := v.Check(c)
	if c.IsFile() {
		return r
	}
	p.SetFieldState(r.Field, r.Valid, r.Message)
	return r
}

// Submit validates the whole form and presents every field. When the form is
// invalid the first invalid field is focused; otherwise the confirmation notice
// is shown.
func (v *Validator) Submit(p Presenter, controls []Control) FormResult {
	res := v.ValidateForm(controls)
	for _, r := range res.Results {
		p.SetFieldState(r.Field, r.Valid, r.Message)
	}

	if !res.Valid {
		p.Focus(res.FocusTarget)
		return res
	}

	p.Notify(v.messages.Submitted)
	return res
}
