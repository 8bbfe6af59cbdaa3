package models

import "time"

// Canonical student field names, shared by JSON, BSON and the query layer
const (
	StudentFieldID                   = "id"
	StudentFieldFullName             = "fullName"
	StudentFieldDateOfBirth          = "dateOfBirth"
	StudentFieldAddress              = "address"
	StudentFieldPhoneNumber          = "phoneNumber"
	StudentFieldEmail                = "email"
	StudentFieldNIC                  = "nic"
	StudentFieldMiddleSchoolResults  = "middleSchoolResults"
	StudentFieldHighSchoolResults    = "highSchoolResults"
	StudentFieldCertifications       = "certifications"
	StudentFieldPreferredStudyCenter = "preferredStudyCenter"
	StudentFieldSelectedCategory     = "selectedCategory"
	StudentFieldSelectedSubcategory  = "selectedSubcategory"
	StudentFieldSelectedCourse       = "selectedCourse"
	StudentFieldStatus               = "status"
	StudentFieldDisabled             = "disabled"
	StudentFieldAppliedDate          = "appliedDate"
	StudentFieldCreatedAt            = "createdAt"
	StudentFieldUpdatedAt            = "updatedAt"
)

// StudentSearchFields are matched by the free-text search of the admin list
var StudentSearchFields = []string{
	StudentFieldFullName,
	StudentFieldSelectedCourse,
	StudentFieldPreferredStudyCenter,
	StudentFieldNIC,
	StudentFieldEmail,
}

// Student is a course registration (application) submitted through the public form
type Student struct {
	ID                   string        `json:"id" bson:"_id"`
	FullName             string        `json:"fullName" bson:"fullName"`
	DateOfBirth          time.Time     `json:"dateOfBirth" bson:"dateOfBirth"`
	Address              string        `json:"address" bson:"address"`
	PhoneNumber          string        `json:"phoneNumber" bson:"phoneNumber"`
	Email                string        `json:"email" bson:"email"`
	NIC                  string        `json:"nic" bson:"nic"`
	MiddleSchoolResults  string        `json:"middleSchoolResults" bson:"middleSchoolResults"`
	HighSchoolResults    string        `json:"highSchoolResults" bson:"highSchoolResults"`
	Certifications       string        `json:"certifications,omitempty" bson:"certifications,omitempty"`
	PreferredStudyCenter string        `json:"preferredStudyCenter" bson:"preferredStudyCenter"`
	SelectedCategory     string        `json:"selectedCategory" bson:"selectedCategory"`
	SelectedSubcategory  string        `json:"selectedSubcategory,omitempty" bson:"selectedSubcategory,omitempty"`
	SelectedCourse       string        `json:"selectedCourse" bson:"selectedCourse"`
	Status               StudentStatus `json:"status" bson:"status"`
	Disabled             bool          `json:"disabled" bson:"disabled"`
	AppliedDate          time.Time     `json:"appliedDate" bson:"appliedDate"`
	CreatedAt            time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// Field implements query.Record
func (s *Student) Field(name string) (interface{}, bool) {
	switch name {
	case StudentFieldID:
		return s.ID, true
	case StudentFieldFullName:
		return s.FullName, true
	case StudentFieldDateOfBirth:
		return s.DateOfBirth, true
	case StudentFieldAddress:
		return s.Address, true
	case StudentFieldPhoneNumber:
		return s.PhoneNumber, true
	case StudentFieldEmail:
		return s.Email, true
	case StudentFieldNIC:
		return s.NIC, true
	case StudentFieldMiddleSchoolResults:
		return s.MiddleSchoolResults, true
	case StudentFieldHighSchoolResults:
		return s.HighSchoolResults, true
	case StudentFieldCertifications:
		return s.Certifications, true
	case StudentFieldPreferredStudyCenter:
		return s.PreferredStudyCenter, true
	case StudentFieldSelectedCategory:
		return s.SelectedCategory, true
	case StudentFieldSelectedSubcategory:
		return s.SelectedSubcategory, true
	case StudentFieldSelectedCourse:
		return s.SelectedCourse, true
	case StudentFieldStatus:
		return string(s.Status), true
	case StudentFieldDisabled:
		return s.Disabled, true
	case StudentFieldAppliedDate:
		return s.AppliedDate, true
	case StudentFieldCreatedAt:
		return s.CreatedAt, true
	case StudentFieldUpdatedAt:
		return s.UpdatedAt, true
	}
	return nil, false
}

// StudentUpdate is a partial update of a student. Nil fields are left untouched.
type StudentUpdate struct {
	FullName             *string
	DateOfBirth          *time.Time
	Address              *string
	PhoneNumber          *string
	Email                *string
	NIC                  *string
	MiddleSchoolResults  *string
	HighSchoolResults    *string
	Certifications       *string
	PreferredStudyCenter *string
	SelectedCategory     *string
	SelectedSubcategory  *string
	SelectedCourse       *string
	Status               *StudentStatus
	Disabled             *bool
}

// Changes returns the set fields keyed by canonical field name
func (u StudentUpdate) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	setString := func(field string, v *string) {
		if v != nil {
			changes[field] = *v
		}
	}

	setString(StudentFieldFullName, u.FullName)
	if u.DateOfBirth != nil {
		changes[StudentFieldDateOfBirth] = *u.DateOfBirth
	}
	setString(StudentFieldAddress, u.Address)
	setString(StudentFieldPhoneNumber, u.PhoneNumber)
	setString(StudentFieldEmail, u.Email)
	setString(StudentFieldNIC, u.NIC)
	setString(StudentFieldMiddleSchoolResults, u.MiddleSchoolResults)
	setString(StudentFieldHighSchoolResults, u.HighSchoolResults)
	setString(StudentFieldCertifications, u.Certifications)
	setString(StudentFieldPreferredStudyCenter, u.PreferredStudyCenter)
	setString(StudentFieldSelectedCategory, u.SelectedCategory)
	setString(StudentFieldSelectedSubcategory, u.SelectedSubcategory)
	setString(StudentFieldSelectedCourse, u.SelectedCourse)
	if u.Status != nil {
		changes[StudentFieldStatus] = string(*u.Status)
	}
	if u.Disabled != nil {
		changes[StudentFieldDisabled] = *u.Disabled
	}
	return changes
}

// IsEmpty reports whether the update sets no field
func (u StudentUpdate) IsEmpty() bool {
	return len(u.Changes()) == 0
}

// Apply copies the set fields onto s
func (u StudentUpdate) Apply(s *Student) {
	if u.FullName != nil {
		s.FullName = *u.FullName
	}
	if u.DateOfBirth != nil {
		s.DateOfBirth = *u.DateOfBirth
	}
	if u.Address != nil {
		s.Address = *u.Address
	}
	if u.PhoneNumber != nil {
		s.PhoneNumber = *u.PhoneNumber
	}
	if u.Email != nil {
		s.Email = *u.Email
	}
	if u.NIC != nil {
		s.NIC = *u.NIC
	}
	if u.MiddleSchoolResults != nil {
		s.MiddleSchoolResults = *u.MiddleSchoolResults
	}
	if u.HighSchoolResults != nil {
		s.HighSchoolResults = *u.HighSchoolResults
	}
	if u.Certifications != nil {
		s.Certifications = *u.Certifications
	}
	if u.PreferredStudyCenter != nil {
		s.PreferredStudyCenter = *u.PreferredStudyCenter
	}
	if u.SelectedCategory != nil {
		s.SelectedCategory = *u.SelectedCategory
	}
	if u.SelectedSubcategory != nil {
		s.SelectedSubcategory = *u.SelectedSubcategory
	}
	if u.SelectedCourse != nil {
		s.SelectedCourse = *u.SelectedCourse
	}
	if u.Status != nil {
		s.Status = *u.Status
	}
	if u.Disabled != nil {
		s.Disabled = *u.Disabled
	}
}
