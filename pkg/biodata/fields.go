package biodata

import "fmt"

// Field identifies a control of the biodata form by its element id.
type Field string

const (
	FullName         Field = "fullName"
	BirthDate        Field = "birthDate"
	BirthTime        Field = "birthTime"
	BirthPlace       Field = "birthPlace"
	Religion         Field = "religion"
	Caste            Field = "caste"
	Height           Field = "height"
	BloodGroup       Field = "bloodGroup"
	Education        Field = "education"
	Occupation       Field = "occupation"
	FatherName       Field = "fatherName"
	FatherOccupation Field = "fatherOccupation"
	MotherName       Field = "motherName"
	Sisters          Field = "sisters"
	Brothers         Field = "brothers"
	Contact          Field = "contact"
	Address          Field = "address"

	// PhotoUpload is the only file control. It is never validated.
	PhotoUpload Field = "photoUpload"
)

// Fields lists the value controls in document order.
var Fields = []Field{
	FullName,
	BirthDate,
	BirthTime,
	BirthPlace,
	Religion,
	Caste,
	Height,
	BloodGroup,
	Education,
	Occupation,
	FatherName,
	FatherOccupation,
	MotherName,
	Sisters,
	Brothers,
	Contact,
	Address,
}

// BloodGroups are the options offered by the blood group select.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

func (f Field) String() string { return string(f) }

// IsFile reports whether the field is a file control.
func (f Field) IsFile() bool { return f == PhotoUpload }

// IsSelect reports whether the field is rendered as a select.
// Selects are validated on change, every other control on input.
func (f Field) IsSelect() bool { return f == BloodGroup }

// IsMultiline reports whether the field is rendered as a textarea.
func (f Field) IsMultiline() bool { return f == Address }

// Known reports whether f is one of the form's controls, the file control included.
func (f Field) Known() bool {
	if f.IsFile() {
		return true
	}
	_, ok := fieldIndex[f]
	return ok
}

// Position returns the document order index of f, or -1 for unknown fields.
// The file control sorts after every value control.
func (f Field) Position() int {
	if f.IsFile() {
		return len(Fields)
	}
	if i, ok := fieldIndex[f]; ok {
		return i
	}
	return -1
}

var fieldIndex = func() map[Field]int {
	m := make(map[Field]int, len(Fields))
	for i, f := range Fields {
		m[f] = i
	}
	return m
}()

// ParseField converts an element id into a Field.
func ParseField(id string) (Field, error) {
	f := Field(id)
	if !f.Known() {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, id)
	}
	return f, nil
}
