package dto

import "github.com/yigit/studentportal/internal/app/models"

// CourseRequest is one course of a category or subcategory
type CourseRequest struct {
	Name          string `json:"name" binding:"required" example:"Web Development"`
	Qualification string `json:"qualification" binding:"required" example:"High School Diploma"`
	Duration      string `json:"duration" binding:"required" example:"6 months"`
}

// SubcategoryRequest groups courses below a category
type SubcategoryRequest struct {
	Name    string          `json:"name" binding:"required" example:"Software Development"`
	Courses []CourseRequest `json:"courses" binding:"dive"`
}

// CreateCategoryRequest creates a catalog category with its nested courses
type CreateCategoryRequest struct {
	Name          string               `json:"name" binding:"required" example:"Information Technology"`
	Courses       []CourseRequest      `json:"courses" binding:"dive"`
	Subcategories []SubcategoryRequest `json:"subcategories" binding:"dive"`
}

// CatalogResponse is the payload of the public course listing
type CatalogResponse struct {
	Categories []models.Category `json:"categories"`
}

// ToCategory converts the request into a model without an id
func (r *CreateCategoryRequest) ToCategory() models.Category {
	category := models.Category{
		Name:          r.Name,
		Courses:       toCourses(r.Courses),
		Subcategories: make([]models.Subcategory, 0, len(r.Subcategories)),
	}
	for _, sub := range r.Subcategories {
		category.Subcategories = append(category.Subcategories, models.Subcategory{
			Name:    sub.Name,
			Courses: toCourses(sub.Courses),
		})
	}
	return category
}

func toCourses(in []CourseRequest) []models.Course {
	out := make([]models.Course, 0, len(in))
	for _, c := range in {
		out = append(out, models.Course{Name: c.Name, Qualification: c.Qualification, Duration: c.Duration})
	}
	return out
}
