package dto

// CreateStudentRequest is the public registration form
type CreateStudentRequest struct {
	FullName             string `json:"fullName" binding:"required" example:"Nimal Perera"`
	DateOfBirth          string `json:"dateOfBirth" binding:"required" example:"2004-05-17"`
	Address              string `json:"address" binding:"required" example:"12 Temple Road, Kandy"`
	PhoneNumber          string `json:"phoneNumber" binding:"required" example:"0771234567"`
	Email                string `json:"email" binding:"required,email" example:"nimal@example.com"`
	NIC                  string `json:"nic" binding:"required" example:"200412345678"`
	MiddleSchoolResults  string `json:"middleSchoolResults" binding:"required"`
	HighSchoolResults    string `json:"highSchoolResults" binding:"required"`
	Certifications       string `json:"certifications"`
	PreferredStudyCenter string `json:"preferredStudyCenter" binding:"required" example:"Kandy"`
	SelectedCategory     string `json:"selectedCategory" binding:"required" example:"Information Technology"`
	SelectedSubcategory  string `json:"selectedSubcategory" example:"Software Development"`
	SelectedCourse       string `json:"selectedCourse" binding:"required" example:"Web Development"`
}

// UpdateStudentRequest is a partial update from the admin area. Omitted fields are left untouched.
type UpdateStudentRequest struct {
	FullName             *string `json:"fullName" binding:"omitempty,min=1"`
	DateOfBirth          *string `json:"dateOfBirth" binding:"omitempty"`
	Address              *string `json:"address" binding:"omitempty,min=1"`
	PhoneNumber          *string `json:"phoneNumber" binding:"omitempty,min=1"`
	Email                *string `json:"email" binding:"omitempty,email"`
	NIC                  *string `json:"nic" binding:"omitempty,min=1"`
	MiddleSchoolResults  *string `json:"middleSchoolResults" binding:"omitempty,min=1"`
	HighSchoolResults    *string `json:"highSchoolResults" binding:"omitempty,min=1"`
	Certifications       *string `json:"certifications"`
	PreferredStudyCenter *string `json:"preferredStudyCenter" binding:"omitempty,min=1"`
	SelectedCategory     *string `json:"selectedCategory" binding:"omitempty,min=1"`
	SelectedSubcategory  *string `json:"selectedSubcategory"`
	SelectedCourse       *string `json:"selectedCourse" binding:"omitempty,min=1"`
	Status               *string `json:"status" binding:"omitempty,oneof=Pending Approved Rejected" example:"Approved"`
	Disabled             *bool   `json:"disabled"`
}

// SetDisabledRequest toggles the soft-disable flag
type SetDisabledRequest struct {
	Disabled *bool `json:"disabled" binding:"required" example:"true"`
}

// StudentListQuery holds the query string of the admin list
type StudentListQuery struct {
	Status       string `form:"status"`
	Search       string `form:"search"`
	ShowDisabled string `form:"showDisabled"`
}

// IncludeDisabled reports whether disabled students were requested. Only the literal "true" enables it.
func (q StudentListQuery) IncludeDisabled() bool {
	return q.ShowDisabled == "true"
}
