package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/app/repositories"
	"github.com/yigit/studentportal/internal/pkg/apperrors"
	"github.com/yigit/studentportal/internal/pkg/logger"
	"github.com/yigit/studentportal/internal/pkg/query"
)

var certificateColumns = map[string]string{
	models.CertificateFieldID:                 "id",
	models.CertificateFieldStudentID:          "student_id",
	models.CertificateFieldNIC:                "nic",
	models.CertificateFieldCertificateType:    "certificate_type",
	models.CertificateFieldIssuingInstitution: "issuing_institution",
	models.CertificateFieldIssueDate:          "issue_date",
	models.CertificateFieldCertificateID:      "certificate_id",
	models.CertificateFieldComments:           "comments",
	models.CertificateFieldFileURL:            "file_url",
	models.CertificateFieldFileName:           "file_name",
	models.CertificateFieldFileSize:           "file_size",
	models.CertificateFieldFileType:           "file_type",
	models.CertificateFieldStatus:             "status",
	models.CertificateFieldUploadDate:         "upload_date",
	models.CertificateFieldCreatedAt:          "created_at",
	models.CertificateFieldUpdatedAt:          "updated_at",
}

var certificateSelectColumns = []string{
	"id", "student_id", "nic", "certificate_type", "issuing_institution", "issue_date",
	"certificate_id", "comments", "file_url", "file_name", "file_size", "file_type",
	"status", "upload_date", "created_at", "updated_at",
}

// CertificateRepository handles the certificates table
type CertificateRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCertificateRepository creates a new CertificateRepository
func NewCertificateRepository(db *pgxpool.Pool) *CertificateRepository {
	return &CertificateRepository{
		db: db,
		sb: statementBuilder,
	}
}

var _ repositories.CertificateRepository = (*CertificateRepository)(nil)

func scanCertificate(row pgx.Row) (*models.Certificate, error) {
	var c models.Certificate
	var status string
	err := row.Scan(
		&c.ID, &c.StudentID, &c.NIC, &c.CertificateType, &c.IssuingInstitution, &c.IssueDate,
		&c.CertificateID, &c.Comments, &c.FileURL, &c.FileName, &c.FileSize, &c.FileType,
		&status, &c.UploadDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Status = models.CertificateStatus(status)
	return &c, nil
}

// List returns the certificates matching filter
func (r *CertificateRepository) List(ctx context.Context, filter query.Predicate, order query.Sort) ([]*models.Certificate, error) {
	where, err := sqlFilter(filter, certificateColumns)
	if err != nil {
		return nil, fmt.Errorf("failed to build certificate filter: %w", err)
	}
	orderBy, err := sqlOrderBy(order, certificateColumns)
	if err != nil {
		return nil, fmt.Errorf("failed to build certificate order: %w", err)
	}

	sql, args, err := r.sb.Select(certificateSelectColumns...).
		From("certificates").
		Where(where).
		OrderBy(orderBy...).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list certificates SQL")
		return nil, fmt.Errorf("failed to build list certificates query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list certificates query")
		return nil, fmt.Errorf("error querying certificates: %w", err)
	}
	defer rows.Close()

	certificates := []*models.Certificate{}
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning certificate row")
			return nil, fmt.Errorf("error scanning certificate row: %w", err)
		}
		certificates = append(certificates, c)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating certificate rows")
		return nil, fmt.Errorf("error iterating certificate rows: %w", err)
	}
	return certificates, nil
}

// GetByID retrieves a certificate by id
func (r *CertificateRepository) GetByID(ctx context.Context, id string) (*models.Certificate, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrCertificateNotFound
	}

	sql, args, err := r.sb.Select(certificateSelectColumns...).
		From("certificates").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get certificate SQL")
		return nil, fmt.Errorf("failed to build get certificate query: %w", err)
	}

	c, err := scanCertificate(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCertificateNotFound
		}
		logger.Error().Err(err).Str("certificateID", id).Msg("Error scanning certificate row")
		return nil, fmt.Errorf("error getting certificate by ID: %w", err)
	}
	return c, nil
}

// Create inserts certificate metadata
func (r *CertificateRepository) Create(ctx context.Context, certificate *models.Certificate) error {
	if certificate.ID == "" {
		certificate.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	certificate.CreatedAt, certificate.UpdatedAt = now, now

	sql, args, err := r.sb.Insert("certificates").
		Columns(certificateSelectColumns...).
		Values(
			certificate.ID, certificate.StudentID, certificate.NIC, certificate.CertificateType,
			certificate.IssuingInstitution, certificate.IssueDate, certificate.CertificateID,
			certificate.Comments, certificate.FileURL, certificate.FileName, certificate.FileSize,
			certificate.FileType, string(certificate.Status), certificate.UploadDate,
			certificate.CreatedAt, certificate.UpdatedAt,
		).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create certificate SQL")
		return fmt.Errorf("failed to build create certificate query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("studentID", certificate.StudentID).Msg("Error executing create certificate query")
		return fmt.Errorf("error creating certificate: %w", err)
	}
	return nil
}

// UpdateStatus records a verification decision
func (r *CertificateRepository) UpdateStatus(ctx context.Context, id string, status models.CertificateStatus) (*models.Certificate, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrCertificateNotFound
	}

	sql, args, err := r.sb.Update("certificates").
		Set("status", string(status)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(certificateSelectColumns)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update certificate status SQL")
		return nil, fmt.Errorf("failed to build update certificate status query: %w", err)
	}

	c, err := scanCertificate(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCertificateNotFound
		}
		logger.Error().Err(err).Str("certificateID", id).Msg("Error executing update certificate status query")
		return nil, fmt.Errorf("error updating certificate status: %w", err)
	}
	return c, nil
}
