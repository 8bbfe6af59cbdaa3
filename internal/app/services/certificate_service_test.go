package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/app/models/dto"
	"github.com/yigit/studentportal/internal/pkg/apperrors"
	"github.com/yigit/studentportal/internal/pkg/filestorage"
)

func newCertificateServiceAt(t *testing.T, start time.Time) CertificateService {
	t.Helper()
	svc := NewCertificateService(newTestRepos().CertificateRepository, filestorage.NewPublicLocator("/uploads"), zerolog.Nop())
	impl, ok := svc.(*certificateService)
	require.True(t, ok)
	impl.now = fixedClock(start)
	return svc
}

func certificateRequest(studentID, nic string) *dto.CreateCertificateRequest {
	return &dto.CreateCertificateRequest{
		StudentID:       studentID,
		NIC:             nic,
		CertificateType: "O/L Certificate",
		FileName:        "ol results.pdf",
		FileSize:        2048,
		FileType:        "application/pdf",
	}
}

func TestCreateCertificate(t *testing.T) {
	svc := newCertificateServiceAt(t, base)
	ctx := context.Background()

	req := certificateRequest("s1", "1001")
	req.IssueDate = "2020-03-01"
	cert, err := svc.CreateCertificate(ctx, req)
	require.NoError(t, err)

	assert.NotEmpty(t, cert.ID)
	assert.Equal(t, models.CertificateStatusPending, cert.Status)
	assert.True(t, base.Equal(cert.UploadDate))
	assert.Equal(t, "/uploads/certificates/1740819600000_ol results.pdf", cert.FileURL)
	require.NotNil(t, cert.IssueDate)
	assert.True(t, time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC).Equal(*cert.IssueDate))

	noDate, err := svc.CreateCertificate(ctx, certificateRequest("s1", "1001"))
	require.NoError(t, err)
	assert.Nil(t, noDate.IssueDate)
}

func TestCreateCertificate_Validation(t *testing.T) {
	svc := newCertificateServiceAt(t, base)
	ctx := context.Background()

	missing := certificateRequest("s1", "")
	_, err := svc.CreateCertificate(ctx, missing)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	negative := certificateRequest("s1", "1001")
	negative.FileSize = -1
	_, err = svc.CreateCertificate(ctx, negative)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	badDate := certificateRequest("s1", "1001")
	badDate.IssueDate = "yesterday"
	_, err = svc.CreateCertificate(ctx, badDate)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestListCertificates(t *testing.T) {
	svc := newCertificateServiceAt(t, base)
	ctx := context.Background()

	first, err := svc.CreateCertificate(ctx, certificateRequest("s1", "1001"))
	require.NoError(t, err)
	second, err := svc.CreateCertificate(ctx, certificateRequest("s2", "1002"))
	require.NoError(t, err)
	third, err := svc.CreateCertificate(ctx, certificateRequest("s1", "1001"))
	require.NoError(t, err)

	_, err = svc.UpdateCertificateStatus(ctx, second.ID, "Verified")
	require.NoError(t, err)

	ids := func(list []*models.Certificate) []string {
		var out []string
		for _, c := range list {
			out = append(out, c.ID)
		}
		return out
	}

	all, err := svc.ListCertificates(ctx, CertificateFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{third.ID, second.ID, first.ID}, ids(all))

	byStudent, err := svc.ListCertificates(ctx, CertificateFilter{StudentID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, []string{third.ID, first.ID}, ids(byStudent))

	verified, err := svc.ListCertificates(ctx, CertificateFilter{Status: "Verified"})
	require.NoError(t, err)
	assert.Equal(t, []string{second.ID}, ids(verified))

	statusAll, err := svc.ListCertificates(ctx, CertificateFilter{Status: StatusAll, NIC: "1001"})
	require.NoError(t, err)
	assert.Len(t, statusAll, 2)
}

func TestUpdateCertificateStatus(t *testing.T) {
	svc := newCertificateServiceAt(t, base)
	ctx := context.Background()

	cert, err := svc.CreateCertificate(ctx, certificateRequest("s1", "1001"))
	require.NoError(t, err)

	rejected, err := svc.UpdateCertificateStatus(ctx, cert.ID, "Rejected")
	require.NoError(t, err)
	assert.Equal(t, models.CertificateStatusRejected, rejected.Status)

	_, err = svc.UpdateCertificateStatus(ctx, cert.ID, "Approved")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.UpdateCertificateStatus(ctx, "missing", "Verified")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
