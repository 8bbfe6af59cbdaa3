// Package services implements the business rules of the portal on top of the repositories.
package services

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/yigit/studentportal/internal/app/repositories"
	"github.com/yigit/studentportal/internal/pkg/auth"
	"github.com/yigit/studentportal/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	StudentService     StudentService
	CertificateService CertificateService
	CourseService      CourseService
	AuthService        AuthService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, locator filestorage.Locator, logger zerolog.Logger) *Services {
	return &Services{
		StudentService:     NewStudentService(repos.StudentRepository, logger),
		CertificateService: NewCertificateService(repos.CertificateRepository, locator, logger),
		CourseService:      NewCourseService(repos.CourseRepository, logger),
		AuthService:        NewAuthService(repos.StaffRepository, jwtService, logger),
	}
}

// clock is replaced in tests
type clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}

var validate = validator.New()

func validEmail(email string) bool {
	return validate.Var(strings.TrimSpace(email), "required,email") == nil
}
