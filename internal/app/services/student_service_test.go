package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/app/models/dto"
	"github.com/yigit/studentportal/internal/pkg/apperrors"
)

var base = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateStudent(t *testing.T) {
	svc := newStudentServiceAt(t, newTestRepos(), base)
	ctx := context.Background()

	student, err := svc.CreateStudent(ctx, validStudentRequest("  Nimal Perera ", " 200412345678 "))
	require.NoError(t, err)

	assert.NotEmpty(t, student.ID)
	assert.Equal(t, "Nimal Perera", student.FullName)
	assert.Equal(t, "200412345678", student.NIC)
	assert.Equal(t, models.StudentStatusPending, student.Status)
	assert.False(t, student.Disabled)
	assert.True(t, base.Equal(student.AppliedDate))
	assert.True(t, time.Date(2004, 5, 17, 0, 0, 0, 0, time.UTC).Equal(student.DateOfBirth))

	got, err := svc.GetStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, got.ID)
}

func TestCreateStudent_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(r *dto.CreateStudentRequest)
		message string
	}{
		{"blank name", func(r *dto.CreateStudentRequest) { r.FullName = "   " }, "fullName is required"},
		{"first missing field alphabetically", func(r *dto.CreateStudentRequest) { r.NIC = ""; r.Address = "" }, "address is required"},
		{"bad email", func(r *dto.CreateStudentRequest) { r.Email = "nope" }, "email must be a valid email address"},
		{"bad date", func(r *dto.CreateStudentRequest) { r.DateOfBirth = "17/05/2004" }, "dateOfBirth must be a date (YYYY-MM-DD)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newStudentServiceAt(t, newTestRepos(), base)
			req := validStudentRequest("Nimal", "200412345678")
			tt.mutate(req)

			_, err := svc.CreateStudent(ctx, req)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			msg, ok := apperrors.Message(err)
			assert.True(t, ok)
			assert.Equal(t, tt.message, msg)
		})
	}
}

func TestCreateStudent_DuplicateNIC(t *testing.T) {
	svc := newStudentServiceAt(t, newTestRepos(), base)
	ctx := context.Background()

	_, err := svc.CreateStudent(ctx, validStudentRequest("First", "991234567V"))
	require.NoError(t, err)

	_, err = svc.CreateStudent(ctx, validStudentRequest("Second", "991234567V"))
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	list, err := svc.ListStudents(ctx, StudentFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func seedStudents(t *testing.T, svc StudentService) map[string]*models.Student {
	t.Helper()
	ctx := context.Background()
	out := map[string]*models.Student{}

	for _, r := range []struct{ name, nic, center, course string }{
		{"Alice Perera", "1001", "Kandy", "Nursing Assistant"},
		{"Bob Silva", "1002", "Colombo", "Web Development"},
		{"Carol Fernando", "1003", "Galle", "Accounting"},
		{"Dinesh Kumar", "1004", "Colombo", "Marketing"},
	} {
		req := validStudentRequest(r.name, r.nic)
		req.PreferredStudyCenter = r.center
		req.SelectedCourse = r.course
		s, err := svc.CreateStudent(ctx, req)
		require.NoError(t, err)
		out[r.name] = s
	}
	return out
}

func names(students []*models.Student) []string {
	var out []string
	for _, s := range students {
		out = append(out, s.FullName)
	}
	return out
}

func TestListStudents(t *testing.T) {
	svc := newStudentServiceAt(t, newTestRepos(), base)
	ctx := context.Background()
	seeded := seedStudents(t, svc)

	_, err := svc.UpdateStudent(ctx, seeded["Bob Silva"].ID, &dto.UpdateStudentRequest{Status: strPtr("Approved")})
	require.NoError(t, err)
	_, err = svc.SetStudentDisabled(ctx, seeded["Dinesh Kumar"].ID, true)
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter StudentFilter
		want   []string
	}{
		{"newest first, disabled hidden", StudentFilter{}, []string{"Carol Fernando", "Bob Silva", "Alice Perera"}},
		{"include disabled", StudentFilter{IncludeDisabled: true}, []string{"Dinesh Kumar", "Carol Fernando", "Bob Silva", "Alice Perera"}},
		{"status", StudentFilter{Status: "Pending"}, []string{"Carol Fernando", "Alice Perera"}},
		{"status all", StudentFilter{Status: StatusAll}, []string{"Carol Fernando", "Bob Silva", "Alice Perera"}},
		{"search is case-insensitive", StudentFilter{Search: "COLOMBO", IncludeDisabled: true}, []string{"Dinesh Kumar", "Bob Silva"}},
		{"search matches nic", StudentFilter{Search: "1003"}, []string{"Carol Fernando"}},
		{"search and status", StudentFilter{Search: "colombo", Status: "Pending"}, nil},
		{"search is literal", StudentFilter{Search: ".*"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := svc.ListStudents(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(list))
		})
	}
}

func TestUpdateStudent(t *testing.T) {
	svc := newStudentServiceAt(t, newTestRepos(), base)
	ctx := context.Background()
	seeded := seedStudents(t, svc)
	alice := seeded["Alice Perera"]

	updated, err := svc.UpdateStudent(ctx, alice.ID, &dto.UpdateStudentRequest{
		FullName:    strPtr(" Alice P. "),
		DateOfBirth: strPtr("2003-01-02"),
		Status:      strPtr("Rejected"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice P.", updated.FullName)
	assert.Equal(t, models.StudentStatusRejected, updated.Status)
	assert.Equal(t, alice.NIC, updated.NIC)
	assert.True(t, alice.AppliedDate.Equal(updated.AppliedDate))

	unchanged, err := svc.UpdateStudent(ctx, alice.ID, &dto.UpdateStudentRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Alice P.", unchanged.FullName)

	_, err = svc.UpdateStudent(ctx, alice.ID, &dto.UpdateStudentRequest{NIC: strPtr("1002")})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = svc.UpdateStudent(ctx, alice.ID, &dto.UpdateStudentRequest{NIC: strPtr(alice.NIC)})
	assert.NoError(t, err)

	_, err = svc.UpdateStudent(ctx, alice.ID, &dto.UpdateStudentRequest{Status: strPtr("Archived")})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.UpdateStudent(ctx, alice.ID, &dto.UpdateStudentRequest{Address: strPtr("  ")})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.UpdateStudent(ctx, "missing", &dto.UpdateStudentRequest{FullName: strPtr("X")})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestSetStudentDisabled(t *testing.T) {
	svc := newStudentServiceAt(t, newTestRepos(), base)
	ctx := context.Background()
	bob := seedStudents(t, svc)["Bob Silva"]

	_, err := svc.UpdateStudent(ctx, bob.ID, &dto.UpdateStudentRequest{Status: strPtr("Approved")})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		disabled, err := svc.SetStudentDisabled(ctx, bob.ID, true)
		require.NoError(t, err)
		assert.True(t, disabled.Disabled)
		assert.Equal(t, models.StudentStatusApproved, disabled.Status)
	}

	enabled, err := svc.SetStudentDisabled(ctx, bob.ID, false)
	require.NoError(t, err)
	assert.False(t, enabled.Disabled)
	assert.Equal(t, models.StudentStatusApproved, enabled.Status)

	stored, err := svc.GetStudent(ctx, bob.ID)
	require.NoError(t, err)
	assert.False(t, stored.Disabled)
	assert.Equal(t, models.StudentStatusApproved, stored.Status)

	// the PATCH body may carry the flag too
	patched, err := svc.UpdateStudent(ctx, bob.ID, &dto.UpdateStudentRequest{Disabled: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, patched.Disabled)

	_, err = svc.SetStudentDisabled(ctx, "missing", true)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDeleteStudent(t *testing.T) {
	svc := newStudentServiceAt(t, newTestRepos(), base)
	ctx := context.Background()
	carol := seedStudents(t, svc)["Carol Fernando"]

	require.NoError(t, svc.DeleteStudent(ctx, carol.ID))

	_, err := svc.GetStudent(ctx, carol.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, svc.DeleteStudent(ctx, carol.ID), apperrors.ErrResourceNotFound)

	_, err = svc.CreateStudent(ctx, validStudentRequest("Carol Again", carol.NIC))
	assert.NoError(t, err)
}
