package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/app/repositories"
	"github.com/yigit/studentportal/internal/pkg/apperrors"
	"github.com/yigit/studentportal/internal/pkg/auth"
)

// ErrLoginFailed is returned for an unknown email and a wrong password alike
var ErrLoginFailed = apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid email or password")

// LoginResult is a successful authentication
type LoginResult struct {
	Staff     *models.Staff
	Token     string
	ExpiresAt time.Time
}

// StaffInput describes a staff account to create or update
type StaffInput struct {
	Email    string
	Password string
	Name     string
	Role     models.StaffRole
}

// AuthService authenticates staff and manages their accounts
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Verify(ctx context.Context, token string) (*models.Staff, error)
	TokenTTL() time.Duration
	CreateStaff(ctx context.Context, input StaffInput) (*models.Staff, error)
	// UpsertStaff creates the account or overwrites name, role and password of an existing one
	UpsertStaff(ctx context.Context, input StaffInput) (staff *models.Staff, created bool, err error)
}

type authService struct {
	staffRepo  repositories.StaffRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(staffRepo repositories.StaffRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		staffRepo:  staffRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// NormalizeEmail lowercases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	staff, err := s.staffRepo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			s.logger.Warn().Str("email", NormalizeEmail(email)).Msg("Login attempt for unknown email")
			return nil, ErrLoginFailed
		}
		return nil, fmt.Errorf("error finding staff: %w", err)
	}

	if !auth.CheckPassword(staff.Password, password) {
		s.logger.Warn().Str("staffID", staff.ID).Msg("Login attempt with wrong password")
		return nil, ErrLoginFailed
	}

	token, expiresAt, err := s.jwtService.GenerateToken(staff)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Str("staffID", staff.ID).Msg("Staff logged in")
	return &LoginResult{Staff: staff, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *authService) Verify(ctx context.Context, token string) (*models.Staff, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	staff, err := s.staffRepo.GetByID(ctx, claims.StaffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("error loading staff: %w", err)
	}
	return staff, nil
}

func (s *authService) TokenTTL() time.Duration {
	return s.jwtService.TokenTTL()
}

func (s *authService) CreateStaff(ctx context.Context, input StaffInput) (*models.Staff, error) {
	staff, err := newStaff(input)
	if err != nil {
		return nil, err
	}
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, fmt.Errorf("error creating staff: %w", err)
	}
	s.logger.Info().Str("staffID", staff.ID).Str("role", string(staff.Role)).Msg("Staff account created")
	return staff, nil
}

func (s *authService) UpsertStaff(ctx context.Context, input StaffInput) (*models.Staff, bool, error) {
	fresh, err := newStaff(input)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.staffRepo.GetByEmail(ctx, fresh.Email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, false, fmt.Errorf("error finding staff: %w", err)
		}
		if err := s.staffRepo.Create(ctx, fresh); err != nil {
			return nil, false, fmt.Errorf("error creating staff: %w", err)
		}
		s.logger.Info().Str("staffID", fresh.ID).Str("role", string(fresh.Role)).Msg("Staff account created")
		return fresh, true, nil
	}

	existing.Name = fresh.Name
	existing.Role = fresh.Role
	existing.Password = fresh.Password
	if err := s.staffRepo.Update(ctx, existing); err != nil {
		return nil, false, fmt.Errorf("error updating staff: %w", err)
	}
	s.logger.Info().Str("staffID", existing.ID).Msg("Staff account updated")
	return existing, false, nil
}

// newStaff validates input and hashes the password
func newStaff(input StaffInput) (*models.Staff, error) {
	email := NormalizeEmail(input.Email)
	if !validEmail(email) {
		return nil, apperrors.NewValidationError("email must be a valid email address")
	}
	if len(input.Password) < auth.MinPasswordLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf("password must be at least %d characters", auth.MinPasswordLength))
	}
	if len(input.Password) > auth.MaxPasswordLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf("password must be at most %d bytes", auth.MaxPasswordLength))
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	role := input.Role
	if role == "" {
		role = models.RoleStaff
	}
	if !role.Valid() {
		return nil, apperrors.NewValidationError("role must be one of: admin, staff")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	return &models.Staff{
		Email:    email,
		Password: hash,
		Name:     name,
		Role:     role,
	}, nil
}
