package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/app/models/dto"
	"github.com/yigit/studentportal/internal/app/services"
	"github.com/yigit/studentportal/internal/middleware"
)

// CourseController serves the course catalog
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetCourses returns the whole catalog
// @Summary Get course catalog
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CatalogResponse}
// @Router /courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	categories, err := c.courseService.ListCategories(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.CatalogResponse{Categories: make([]models.Category, 0, len(categories))}
	for _, category := range categories {
		resp.Categories = append(resp.Categories, *category)
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// CreateCategory adds a catalog category
// @Summary Create course category
// @Tags courses
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body dto.CreateCategoryRequest true "Category with nested courses"
// @Success 201 {object} dto.APIResponse{data=models.Category} "Course category created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Router /courses [post]
func (c *CourseController) CreateCategory(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	category, err := c.courseService.CreateCategory(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(category, "Course category created successfully"))
}
