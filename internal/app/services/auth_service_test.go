package services

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/pkg/apperrors"
)

func newTestAuthService() AuthService {
	return NewAuthService(newTestRepos().StaffRepository, newTestJWT(), zerolog.Nop())
}

func TestLoginAndVerify(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	created, err := svc.CreateStaff(ctx, StaffInput{Email: " Admin@Example.com ", Password: "secret123", Name: "Admin", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", created.Email)
	assert.NotEqual(t, "secret123", created.Password)

	result, err := svc.Login(ctx, "ADMIN@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, created.ID, result.Staff.ID)
	assert.True(t, result.ExpiresAt.After(result.Staff.CreatedAt))

	staff, err := svc.Verify(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, "Admin", staff.Name)
	assert.Equal(t, models.RoleAdmin, staff.Role)
}

func TestLogin_Failures(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.CreateStaff(ctx, StaffInput{Email: "staff@example.com", Password: "secret123", Name: "Staff"})
	require.NoError(t, err)

	for _, tc := range []struct{ email, password string }{
		{"staff@example.com", "wrong-password"},
		{"nobody@example.com", "secret123"},
	} {
		_, err := svc.Login(ctx, tc.email, tc.password)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		msg, _ := apperrors.Message(err)
		assert.Equal(t, "Invalid email or password", msg)
	}
}

func TestVerify_Rejects(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Verify(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)

	_, err = svc.Verify(ctx, "not.a.jwt")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	// token for a staff member that is not stored
	orphan, _, err := newTestJWT().GenerateToken(&models.Staff{ID: "ghost", Email: "ghost@example.com", Role: models.RoleStaff})
	require.NoError(t, err)
	_, err = svc.Verify(ctx, orphan)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestCreateStaff_Validation(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	for _, in := range []StaffInput{
		{Email: "bad", Password: "secret123", Name: "X"},
		{Email: "a@example.com", Password: "123", Name: "X"},
		{Email: "a@example.com", Password: strings.Repeat("p", 73), Name: "X"},
		{Email: "a@example.com", Password: "secret123", Name: " "},
		{Email: "a@example.com", Password: "secret123", Name: "X", Role: "root"},
	} {
		_, err := svc.CreateStaff(ctx, in)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	}

	_, err := svc.CreateStaff(ctx, StaffInput{Email: "long@example.com", Password: strings.Repeat("p", 72), Name: "L"})
	require.NoError(t, err)

	_, err = svc.CreateStaff(ctx, StaffInput{Email: "a@example.com", Password: "secret123", Name: "A"})
	require.NoError(t, err)
	_, err = svc.CreateStaff(ctx, StaffInput{Email: "A@example.com", Password: "secret123", Name: "B"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUpsertStaff(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	first, created, err := svc.UpsertStaff(ctx, StaffInput{Email: "ops@example.com", Password: "secret123", Name: "Ops"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.RoleStaff, first.Role)

	second, created, err := svc.UpsertStaff(ctx, StaffInput{Email: "ops@example.com", Password: "another123", Name: "Ops Lead", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.RoleAdmin, second.Role)

	_, err = svc.Login(ctx, "ops@example.com", "another123")
	assert.NoError(t, err)
}
