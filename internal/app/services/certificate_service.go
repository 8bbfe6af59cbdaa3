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
	"github.com/yigit/studentportal/internal/pkg/filestorage"
	"github.com/yigit/studentportal/internal/pkg/helpers"
	"github.com/yigit/studentportal/internal/pkg/query"
)

var certificateOrder = query.Sort{Field: models.CertificateFieldUploadDate, Descending: true}

// CertificateFilter holds the optional criteria of the certificate list
type CertificateFilter struct {
	Status    string
	StudentID string
	NIC       string
}

// Predicate turns the filter into a storage-independent query
func (f CertificateFilter) Predicate() query.Predicate {
	params := query.Params{
		Equals: []query.Condition{
			{Field: models.CertificateFieldStudentID, Value: strings.TrimSpace(f.StudentID)},
			{Field: models.CertificateFieldNIC, Value: strings.TrimSpace(f.NIC)},
		},
	}
	if status := strings.TrimSpace(f.Status); status != StatusAll {
		params.Equals = append(params.Equals, query.Condition{Field: models.CertificateFieldStatus, Value: status})
	}
	return query.Build(params)
}

// CertificateService records uploaded certificates and their verification
type CertificateService interface {
	ListCertificates(ctx context.Context, filter CertificateFilter) ([]*models.Certificate, error)
	CreateCertificate(ctx context.Context, req *dto.CreateCertificateRequest) (*models.Certificate, error)
	UpdateCertificateStatus(ctx context.Context, id string, status string) (*models.Certificate, error)
}

type certificateService struct {
	certificateRepo repositories.CertificateRepository
	locator         filestorage.Locator
	logger          zerolog.Logger
	now             clock
}

// NewCertificateService creates a new CertificateService
func NewCertificateService(certificateRepo repositories.CertificateRepository, locator filestorage.Locator, logger zerolog.Logger) CertificateService {
	return &certificateService{
		certificateRepo: certificateRepo,
		locator:         locator,
		logger:          logger,
		now:             utcNow,
	}
}

func (s *certificateService) ListCertificates(ctx context.Context, filter CertificateFilter) ([]*models.Certificate, error) {
	certificates, err := s.certificateRepo.List(ctx, filter.Predicate(), certificateOrder)
	if err != nil {
		return nil, fmt.Errorf("error listing certificates: %w", err)
	}
	return certificates, nil
}

func (s *certificateService) CreateCertificate(ctx context.Context, req *dto.CreateCertificateRequest) (*models.Certificate, error) {
	if err := requireNonBlank(map[string]string{
		models.CertificateFieldStudentID:       req.StudentID,
		models.CertificateFieldNIC:             req.NIC,
		models.CertificateFieldCertificateType: req.CertificateType,
		models.CertificateFieldFileName:        req.FileName,
		models.CertificateFieldFileType:        req.FileType,
	}); err != nil {
		return nil, err
	}
	if req.FileSize < 0 {
		return nil, apperrors.NewValidationError("fileSize cannot be negative")
	}

	certificate := &models.Certificate{
		StudentID:          strings.TrimSpace(req.StudentID),
		NIC:                strings.TrimSpace(req.NIC),
		CertificateType:    req.CertificateType,
		IssuingInstitution: req.IssuingInstitution,
		CertificateID:      req.CertificateID,
		Comments:           req.Comments,
		FileName:           req.FileName,
		FileSize:           req.FileSize,
		FileType:           req.FileType,
		Status:             models.CertificateStatusPending,
	}

	if issueDate := strings.TrimSpace(req.IssueDate); issueDate != "" {
		d, err := helpers.ParseDate(issueDate)
		if err != nil {
			return nil, apperrors.NewValidationError("issueDate must be a date (YYYY-MM-DD)")
		}
		certificate.IssueDate = &d
	}

	now := s.now()
	certificate.UploadDate = now
	certificate.FileURL = s.locator.URLFor(filestorage.CertificatesDir, req.FileName, now)

	if err := s.certificateRepo.Create(ctx, certificate); err != nil {
		return nil, fmt.Errorf("error creating certificate: %w", err)
	}

	s.logger.Info().Str("certificateID", certificate.ID).Str("studentID", certificate.StudentID).Msg("Certificate uploaded")
	return certificate, nil
}

func (s *certificateService) UpdateCertificateStatus(ctx context.Context, id string, status string) (*models.Certificate, error) {
	st := models.CertificateStatus(status)
	if !st.Valid() {
		return nil, apperrors.NewValidationError("status must be one of: Pending, Verified, Rejected")
	}

	certificate, err := s.certificateRepo.UpdateStatus(ctx, id, st)
	if err != nil {
		return nil, fmt.Errorf("error updating certificate status: %w", err)
	}

	s.logger.Info().Str("certificateID", id).Str("status", status).Msg("Certificate status changed")
	return certificate, nil
}
