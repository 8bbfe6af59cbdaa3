package seed

import "github.com/yigit/studentportal/internal/app/models"

// DefaultCatalog returns the course catalog installed on an empty database
func DefaultCatalog() []models.Category {
	return []models.Category{
		{
			Name:    "Information Technology",
			Courses: []models.Course{},
			Subcategories: []models.Subcategory{
				{
					Name: "Software Development",
					Courses: []models.Course{
						{Name: "Web Development", Qualification: "High School Diploma", Duration: "6 months"},
						{Name: "Mobile App Development", Qualification: "High School Diploma", Duration: "8 months"},
						{Name: "Full Stack Development", Qualification: "Bachelor's Degree", Duration: "12 months"},
					},
				},
				{
					Name: "Networking",
					Courses: []models.Course{
						{Name: "Network Administration", Qualification: "High School Diploma", Duration: "6 months"},
						{Name: "Cybersecurity", Qualification: "Bachelor's Degree", Duration: "12 months"},
					},
				},
			},
		},
		{
			Name: "Business",
			Courses: []models.Course{
				{Name: "Business Administration", Qualification: "High School Diploma", Duration: "12 months"},
				{Name: "Marketing", Qualification: "High School Diploma", Duration: "6 months"},
				{Name: "Accounting", Qualification: "High School Diploma", Duration: "12 months"},
			},
			Subcategories: []models.Subcategory{},
		},
		{
			Name: "Healthcare",
			Courses: []models.Course{
				{Name: "Nursing Assistant", Qualification: "High School Diploma", Duration: "3 months"},
				{Name: "Medical Records", Qualification: "High School Diploma", Duration: "6 months"},
			},
			Subcategories: []models.Subcategory{},
		},
	}
}
