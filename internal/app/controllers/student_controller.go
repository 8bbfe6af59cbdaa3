// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentportal/internal/app/models/dto"
	"github.com/yigit/studentportal/internal/app/services"
	"github.com/yigit/studentportal/internal/middleware"
	"github.com/yigit/studentportal/internal/pkg/helpers"
)

// StudentController handles registration and the admin student area
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetStudents lists registrations
// @Summary List students
// @Description Lists registrations, newest first. Disabled students are hidden unless showDisabled=true.
// @Tags students
// @Produce json
// @Security CookieAuth
// @Param status query string false "Pending, Approved, Rejected or all"
// @Param search query string false "Case-insensitive text matched against name, course, study center, NIC and email"
// @Param showDisabled query string false "true to include disabled students; any other value is ignored"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	var q dto.StudentListQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	students, err := c.studentService.ListStudents(ctx.Request.Context(), services.StudentFilter{
		Status:          q.Status,
		Search:          q.Search,
		IncludeDisabled: q.IncludeDisabled(),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.NewListResponse(students, len(students))
	if page, size, ok := helpers.ParsePaginationParams(ctx); ok {
		start, end := helpers.CalculateSliceIndices(page, size, len(students))
		pagination := helpers.NewPaginationInfo(int64(len(students)), page, size)
		resp.Data = students[start:end]
		resp.Pagination = &pagination
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateStudent submits a registration
// @Summary Register for a course
// @Description Public registration form. The new registration starts in status Pending.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Registration form"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Registration submitted successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 409 {object} dto.APIResponse "NIC already registered"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student, "Registration submitted successfully"))
}

// GetStudent retrieves one registration
// @Summary Get student details
// @Tags students
// @Produce json
// @Security CookieAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, ""))
}

// UpdateStudent applies a partial update, including status decisions
// @Summary Update student
// @Description Updates the given fields. Setting status approves or rejects the application.
// @Tags students
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Failure 409 {object} dto.APIResponse "NIC already registered"
// @Router /students/{id} [patch]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student updated successfully"))
}

// SetStudentDisabled enables or disables a student
// @Summary Enable or disable student
// @Description Toggles the soft-disable flag. The application status is left unchanged.
// @Tags students
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Student ID"
// @Param request body dto.SetDisabledRequest true "Disabled flag"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) SetStudentDisabled(ctx *gin.Context) {
	var req dto.SetDisabledRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.SetStudentDisabled(ctx.Request.Context(), ctx.Param("id"), *req.Disabled)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	action := "enabled"
	if *req.Disabled {
		action = "disabled"
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student "+action+" successfully"))
}

// DeleteStudent permanently removes a registration
// @Summary Delete student
// @Tags students
// @Produce json
// @Security CookieAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deleted successfully"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student deleted successfully"))
}
