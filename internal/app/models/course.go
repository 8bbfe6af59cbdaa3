package models

// Course is a single offering in the catalog
type Course struct {
	Name          string `json:"name" bson:"name" example:"Web Development"`
	Qualification string `json:"qualification" bson:"qualification" example:"High School Diploma"`
	Duration      string `json:"duration" bson:"duration" example:"6 months"`
}

// Subcategory groups courses below a category
type Subcategory struct {
	Name    string   `json:"name" bson:"name"`
	Courses []Course `json:"courses" bson:"courses"`
}

// Category is the top level of the course catalog.
// Courses may hang directly off the category, off its subcategories, or both.
type Category struct {
	ID            string        `json:"id" bson:"_id"`
	Name          string        `json:"name" bson:"name"`
	Courses       []Course      `json:"courses" bson:"courses"`
	Subcategories []Subcategory `json:"subcategories" bson:"subcategories"`
}
