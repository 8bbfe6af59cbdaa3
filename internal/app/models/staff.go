package models

import (
	"time"
)

// Staff is an admin-area account
type Staff struct {
	ID        string    `json:"id" bson:"_id" example:"5f1d7c3e-6a2b-4c55-9d3e-0b7a1f2e8c11"`
	Email     string    `json:"email" bson:"email" example:"admin@example.com"`
	Password  string    `json:"-" bson:"password"` // bcrypt hash, never serialized
	Name      string    `json:"name" bson:"name" example:"Admin User"`
	Role      StaffRole `json:"role" bson:"role" example:"admin"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
