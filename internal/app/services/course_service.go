package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/app/models/dto"
	"github.com/yigit/studentportal/internal/app/repositories"
	"github.com/yigit/studentportal/internal/pkg/apperrors"
)

// CourseService manages the course catalog shown on the registration form
type CourseService interface {
	ListCategories(ctx context.Context) ([]*models.Category, error)
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error)
	ReplaceCatalog(ctx context.Context, categories []models.Category) error
}

type courseService struct {
	courseRepo repositories.CourseRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo repositories.CourseRepository, logger zerolog.Logger) CourseService {
	return &courseService{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

func (s *courseService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	return categories, nil
}

func (s *courseService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := req.ToCategory()
	if err := validateCategory(&category); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Create(ctx, &category); err != nil {
		return nil, fmt.Errorf("error creating category: %w", err)
	}

	s.logger.Info().Str("categoryID", category.ID).Str("name", category.Name).Msg("Category created")
	return &category, nil
}

func (s *courseService) ReplaceCatalog(ctx context.Context, categories []models.Category) error {
	for i := range categories {
		if err := validateCategory(&categories[i]); err != nil {
			return err
		}
	}

	if err := s.courseRepo.ReplaceAll(ctx, categories); err != nil {
		return fmt.Errorf("error replacing catalog: %w", err)
	}

	s.logger.Info().Int("categories", len(categories)).Msg("Course catalog replaced")
	return nil
}

func validateCategory(category *models.Category) error {
	if strings.TrimSpace(category.Name) == "" {
		return apperrors.NewValidationError("category name is required")
	}
	if category.Courses == nil {
		category.Courses = []models.Course{}
	}
	if category.Subcategories == nil {
		category.Subcategories = []models.Subcategory{}
	}
	if err := validateCourses(category.Courses); err != nil {
		return err
	}
	for i, sub := range category.Subcategories {
		if strings.TrimSpace(sub.Name) == "" {
			return apperrors.NewValidationError("subcategory name is required")
		}
		if sub.Courses == nil {
			category.Subcategories[i].Courses = []models.Course{}
		}
		if err := validateCourses(sub.Courses); err != nil {
			return err
		}
	}
	return nil
}

func validateCourses(courses []models.Course) error {
	for _, c := range courses {
		switch {
		case strings.TrimSpace(c.Name) == "":
			return apperrors.NewValidationError("course name is required")
		case strings.TrimSpace(c.Qualification) == "":
			return apperrors.NewValidationError("course qualification is required")
		case strings.TrimSpace(c.Duration) == "":
			return apperrors.NewValidationError("course duration is required")
		}
	}
	return nil
}
