// Package seed installs the default admin account and course catalog
package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/app/repositories"
	"github.com/yigit/studentportal/internal/app/services"
	"github.com/yigit/studentportal/internal/config"
)

// CreateDefaultData creates the admin account and the course catalog when missing.
// Failures are collected so one step does not prevent the other.
func CreateDefaultData(ctx context.Context, cfg *config.Config, repos *repositories.Repositories, svc *services.Services, lgr zerolog.Logger) error {
	if !cfg.Seed.Enabled {
		lgr.Debug().Msg("Seeding disabled")
		return nil
	}

	var finalErr error
	if err := EnsureAdmin(ctx, cfg, svc.AuthService, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error creating admin account")
		finalErr = errors.Join(finalErr, err)
	}
	if err := EnsureCatalog(ctx, repos.CourseRepository, svc.CourseService, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error creating course catalog")
		finalErr = errors.Join(finalErr, err)
	}
	return finalErr
}

// EnsureAdmin creates or refreshes the configured admin account.
// Nothing happens without a configured password.
func EnsureAdmin(ctx context.Context, cfg *config.Config, authService services.AuthService, lgr zerolog.Logger) error {
	if cfg.Seed.AdminPassword == "" {
		lgr.Warn().Msg("No seed admin password configured, skipping admin account")
		return nil
	}

	staff, created, err := authService.UpsertStaff(ctx, services.StaffInput{
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
		Name:     cfg.Seed.AdminName,
		Role:     models.RoleAdmin,
	})
	if err != nil {
		return err
	}

	lgr.Info().Str("email", staff.Email).Bool("created", created).Msg("Admin account ready")
	return nil
}

// EnsureCatalog installs DefaultCatalog when no category exists
func EnsureCatalog(ctx context.Context, courseRepo repositories.CourseRepository, courseService services.CourseService, lgr zerolog.Logger) error {
	count, err := courseRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		lgr.Debug().Int64("categories", count).Msg("Course catalog present, skipping")
		return nil
	}

	if err := courseService.ReplaceCatalog(ctx, DefaultCatalog()); err != nil {
		return err
	}
	lgr.Info().Int("categories", len(DefaultCatalog())).Msg("Default course catalog installed")
	return nil
}
