package dto

import "github.com/yigit/studentportal/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// AuthUser is the staff identity exposed to the admin UI
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email" example:"admin@example.com"`
	Name  string `json:"name" example:"Admin User"`
	Role  string `json:"role" example:"admin"`
}

// LoginResponse is returned by a successful login
type LoginResponse struct {
	Success bool     `json:"success" example:"true"`
	User    AuthUser `json:"user"`
	Token   string   `json:"token"`
}

// VerifyResponse is returned when a session token is valid
type VerifyResponse struct {
	Success bool     `json:"success" example:"true"`
	User    AuthUser `json:"user"`
}

// NewAuthUser maps a staff account to its public identity
func NewAuthUser(staff *models.Staff) AuthUser {
	if staff == nil {
		return AuthUser{}
	}
	return AuthUser{
		ID:    staff.ID,
		Email: staff.Email,
		Name:  staff.Name,
		Role:  string(staff.Role),
	}
}
