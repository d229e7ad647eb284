package biodataform

import "github.com/dmitrymomot/biodata/pkg/biodata"

// Values carries the form's value controls. The json tags are the datastar
// signal names, the form tags the control names of a plain form post.
type Values struct {
	FullName         string `json:"fullName" form:"fullName"`
	BirthDate        string `json:"birthDate" form:"birthDate"`
	BirthTime        string `json:"birthTime" form:"birthTime"`
	BirthPlace       string `json:"birthPlace" form:"birthPlace"`
	Religion         string `json:"religion" form:"religion"`
	Caste            string `json:"caste" form:"caste"`
	Height           string `json:"height" form:"height"`
	BloodGroup       string `json:"bloodGroup" form:"bloodGroup"`
	Education        string `json:"education" form:"education"`
	Occupation       string `json:"occupation" form:"occupation"`
	FatherName       string `json:"fatherName" form:"fatherName"`
	FatherOccupation string `json:"fatherOccupation" form:"fatherOccupation"`
	MotherName       string `json:"motherName" form:"motherName"`
	Sisters          string `json:"sisters" form:"sisters"`
	Brothers         string `json:"brothers" form:"brothers"`
	Contact          string `json:"contact" form:"contact"`
	Address          string `json:"address" form:"address"`
}

func (v *Values) ptr(f biodata.Field) *string {
	switch f {
	case biodata.FullName:
		return &v.FullName
	case biodata.BirthDate:
		return &v.BirthDate
	case biodata.BirthTime:
		return &v.BirthTime
	case biodata.BirthPlace:
		return &v.BirthPlace
	case biodata.Religion:
		return &v.Religion
	case biodata.Caste:
		return &v.Caste
	case biodata.Height:
		return &v.Height
	case biodata.BloodGroup:
		return &v.BloodGroup
	case biodata.Education:
		return &v.Education
	case biodata.Occupation:
		return &v.Occupation
	case biodata.FatherName:
		return &v.FatherName
	case biodata.FatherOccupation:
		return &v.FatherOccupation
	case biodata.MotherName:
		return &v.MotherName
	case biodata.Sisters:
		return &v.Sisters
	case biodata.Brothers:
		return &v.Brothers
	case biodata.Contact:
		return &v.Contact
	case biodata.Address:
		return &v.Address
	}
	return nil
}

// Get returns the value of f, or "" for fields that carry no value.
func (v Values) Get(f biodata.Field) string {
	if p := v.ptr(f); p != nil {
		return *p
	}
	return ""
}

// Set stores s as the value of f. Fields that carry no value are ignored.
func (v *Values) Set(f biodata.Field, s string) {
	if p := v.ptr(f); p != nil {
		*p = s
	}
}

// Map returns the values keyed by field.
func (v Values) Map() map[biodata.Field]string {
	m := make(map[biodata.Field]string, len(biodata.Fields))
	for _, f := range biodata.Fields {
		m[f] = v.Get(f)
	}
	return m
}
