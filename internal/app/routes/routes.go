package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/studentportal/internal/app/controllers"
	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/middleware"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth        *controllers.AuthController
	Student     *controllers.StudentController
	Certificate *controllers.CertificateController
	Course      *controllers.CourseController
	Health      *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.NoRoute(middleware.NoRoute)
	router.GET("/ping", c.Health.Ping)

	api := router.Group("/api")
	api.GET("/health", c.Health.Health)

	// --- Public routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", c.Auth.Login)
		auth.GET("/verify", c.Auth.Verify)
		auth.POST("/logout", c.Auth.Logout)
	}

	api.POST("/students", c.Student.CreateStudent)
	api.POST("/certificates", c.Certificate.CreateCertificate)
	api.GET("/courses", c.Course.GetCourses)

	// --- Staff routes ---
	staff := api.Group("")
	staff.Use(authMiddleware.JWTAuth())

	students := staff.Group("/students")
	{
		students.GET("", c.Student.GetStudents)
		students.GET("/:id", c.Student.GetStudent)
		students.PATCH("/:id", c.Student.UpdateStudent)
		students.PUT("/:id", c.Student.SetStudentDisabled)
		students.DELETE("/:id", c.Student.DeleteStudent)
	}

	certificates := staff.Group("/certificates")
	{
		certificates.GET("", c.Certificate.GetCertificates)
		certificates.PATCH("/:id/status", c.Certificate.UpdateCertificateStatus)
	}

	// Catalog edits are admin only
	admin := staff.Group("")
	admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/courses", c.Course.CreateCategory)
	}
}
