package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/app/services"
	"github.com/yigit/studentportal/internal/pkg/apperrors"
	"github.com/yigit/studentportal/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	StaffKey   = "staff"
	StaffIDKey = "staffID"
	RoleKey    = "role"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	authService services.AuthService
	cookieName  string
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authService services.AuthService, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		cookieName:  cookieName,
	}
}

// TokenFromRequest reads the session token from the Authorization header, falling back to the cookie.
// An explicit bearer token wins over a possibly stale session cookie.
func TokenFromRequest(c *gin.Context, cookieName string) (string, error) {
	token, headerErr := auth.ExtractBearerToken(c.GetHeader("Authorization"))
	if headerErr == nil {
		return token, nil
	}
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie, nil
	}
	return "", headerErr
}

// JWTAuth rejects requests without a valid staff session
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := TokenFromRequest(c, m.cookieName)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		staff, err := m.authService.Verify(c.Request.Context(), token)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		c.Set(StaffKey, staff)
		c.Set(StaffIDKey, staff.ID)
		c.Set(RoleKey, string(staff.Role))
		c.Next()
	}
}

// RoleRequired middleware to check if the staff member has one of the given roles.
// JWTAuth must run first.
func (m *AuthMiddleware) RoleRequired(roles ...models.StaffRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(RoleKey)
		if !exists {
			HandleAPIError(c, apperrors.ErrTokenNotFound)
			return
		}

		for _, r := range roles {
			if role == string(r) {
				c.Next()
				return
			}
		}
		HandleAPIError(c, apperrors.NewForbiddenError("You don't have sufficient permissions for this operation"))
	}
}

// CurrentStaff returns the authenticated staff member, if any
func CurrentStaff(c *gin.Context) (*models.Staff, bool) {
	v, ok := c.Get(StaffKey)
	if !ok {
		return nil, false
	}
	staff, ok := v.(*models.Staff)
	return staff, ok
}
