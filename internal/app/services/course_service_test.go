package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/app/models/dto"
	"github.com/yigit/studentportal/internal/pkg/apperrors"
)

func TestCreateCategory(t *testing.T) {
	svc := NewCourseService(newTestRepos().CourseRepository, zerolog.Nop())
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, &dto.CreateCategoryRequest{
		Name: "Business",
		Courses: []dto.CourseRequest{
			{Name: "Marketing", Qualification: "High School Diploma", Duration: "6 months"},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, category.ID)
	assert.NotNil(t, category.Subcategories)

	_, err = svc.CreateCategory(ctx, &dto.CreateCategoryRequest{
		Name:          "Healthcare",
		Subcategories: []dto.SubcategoryRequest{{Name: "Nursing"}},
	})
	require.NoError(t, err)

	list, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Business", list[0].Name)
	assert.Equal(t, "Healthcare", list[1].Name)
	assert.NotNil(t, list[1].Subcategories[0].Courses)
}

func TestCreateCategory_Validation(t *testing.T) {
	svc := NewCourseService(newTestRepos().CourseRepository, zerolog.Nop())
	ctx := context.Background()

	tests := []dto.CreateCategoryRequest{
		{Name: " "},
		{Name: "IT", Courses: []dto.CourseRequest{{Name: "Web", Qualification: "HSD"}}},
		{Name: "IT", Subcategories: []dto.SubcategoryRequest{{Name: ""}}},
		{Name: "IT", Subcategories: []dto.SubcategoryRequest{{Name: "Dev", Courses: []dto.CourseRequest{{Qualification: "HSD", Duration: "1m"}}}}},
	}
	for _, req := range tests {
		req := req
		_, err := svc.CreateCategory(ctx, &req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	}
}

func TestReplaceCatalog(t *testing.T) {
	repos := newTestRepos()
	svc := NewCourseService(repos.CourseRepository, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Old"})
	require.NoError(t, err)

	require.NoError(t, svc.ReplaceCatalog(ctx, []models.Category{{Name: "Zoology"}, {Name: "Arts"}}))

	list, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Arts", list[0].Name)
	assert.Equal(t, []models.Course{}, list[0].Courses)

	count, err := repos.CourseRepository.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	err = svc.ReplaceCatalog(ctx, []models.Category{{Name: "Valid"}, {Name: ""}})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	list, err = svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
