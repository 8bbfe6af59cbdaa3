package seed

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/app/repositories"
	"github.com/yigit/studentportal/internal/app/repositories/memory"
	"github.com/yigit/studentportal/internal/app/services"
	"github.com/yigit/studentportal/internal/config"
	"github.com/yigit/studentportal/internal/pkg/auth"
	"github.com/yigit/studentportal/internal/pkg/filestorage"
)

func setup(t *testing.T) (*repositories.Repositories, *services.Services, *config.Config) {
	t.Helper()
	auth.BcryptCost = bcrypt.MinCost

	repos := memory.NewRepositories(memory.NewDB())
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: time.Hour})
	svc := services.NewServices(repos, jwtService, filestorage.NewPublicLocator("/uploads"), zerolog.Nop())

	cfg := &config.Config{}
	cfg.Seed.Enabled = true
	cfg.Seed.AdminEmail = "admin@example.com"
	cfg.Seed.AdminName = "Admin User"
	cfg.Seed.AdminPassword = "admin123"
	return repos, svc, cfg
}

func TestCreateDefaultData(t *testing.T) {
	repos, svc, cfg := setup(t)
	ctx := context.Background()

	require.NoError(t, CreateDefaultData(ctx, cfg, repos, svc, zerolog.Nop()))
	require.NoError(t, CreateDefaultData(ctx, cfg, repos, svc, zerolog.Nop()))

	admin, err := repos.StaffRepository.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	_, err = svc.AuthService.Login(ctx, "admin@example.com", "admin123")
	assert.NoError(t, err)

	count, err := repos.CourseRepository.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(DefaultCatalog())), count)
}

func TestCreateDefaultData_Disabled(t *testing.T) {
	repos, svc, cfg := setup(t)
	cfg.Seed.Enabled = false
	ctx := context.Background()

	require.NoError(t, CreateDefaultData(ctx, cfg, repos, svc, zerolog.Nop()))

	count, err := repos.CourseRepository.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestEnsureAdmin_NoPassword(t *testing.T) {
	repos, svc, cfg := setup(t)
	cfg.Seed.AdminPassword = ""
	ctx := context.Background()

	require.NoError(t, EnsureAdmin(ctx, cfg, svc.AuthService, zerolog.Nop()))
	_, err := repos.StaffRepository.GetByEmail(ctx, "admin@example.com")
	assert.Error(t, err)
}

func TestEnsureCatalog_KeepsExisting(t *testing.T) {
	repos, svc, _ := setup(t)
	ctx := context.Background()

	require.NoError(t, svc.CourseService.ReplaceCatalog(ctx, []models.Category{{Name: "Custom"}}))
	require.NoError(t, EnsureCatalog(ctx, repos.CourseRepository, svc.CourseService, zerolog.Nop()))

	list, err := svc.CourseService.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Custom", list[0].Name)
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	require.Len(t, catalog, 3)
	assert.Equal(t, "Information Technology", catalog[0].Name)
	assert.Len(t, catalog[0].Subcategories, 2)
	assert.Equal(t, "Cybersecurity", catalog[0].Subcategories[1].Courses[1].Name)
	assert.Len(t, catalog[1].Courses, 3)
}
