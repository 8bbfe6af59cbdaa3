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
	"github.com/yigit/studentportal/internal/pkg/dberrors"
	"github.com/yigit/studentportal/internal/pkg/logger"
)

var staffSelectColumns = []string{"id", "email", "password", "name", "role", "created_at", "updated_at"}

// StaffRepository handles the staff table
type StaffRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{
		db: db,
		sb: statementBuilder,
	}
}

var _ repositories.StaffRepository = (*StaffRepository)(nil)

func (r *StaffRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.Staff, error) {
	sql, args, err := r.sb.Select(staffSelectColumns...).
		From("staff").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get staff SQL")
		return nil, fmt.Errorf("failed to build get staff query: %w", err)
	}

	var s models.Staff
	var role string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.Email, &s.Password, &s.Name, &role, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		logger.Error().Err(err).Msg("Error scanning staff row")
		return nil, fmt.Errorf("error getting staff: %w", err)
	}
	s.Role = models.StaffRole(role)
	return &s, nil
}

// GetByID retrieves a staff account by id
func (r *StaffRepository) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrStaffNotFound
	}
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail retrieves a staff account by its normalized email
func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// Create inserts a staff account
func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	if staff.ID == "" {
		staff.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	staff.CreatedAt, staff.UpdatedAt = now, now

	sql, args, err := r.sb.Insert("staff").
		Columns(staffSelectColumns...).
		Values(staff.ID, staff.Email, staff.Password, staff.Name, string(staff.Role), staff.CreatedAt, staff.UpdatedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create staff SQL")
		return fmt.Errorf("failed to build create staff query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "staff_email_key") {
			return apperrors.ErrStaffEmailExists
		}
		logger.Error().Err(err).Str("email", staff.Email).Msg("Error executing create staff query")
		return fmt.Errorf("error creating staff: %w", err)
	}
	return nil
}

// Update overwrites name, role and password
func (r *StaffRepository) Update(ctx context.Context, staff *models.Staff) error {
	staff.UpdatedAt = time.Now().UTC()

	sql, args, err := r.sb.Update("staff").
		SetMap(map[string]interface{}{
			"name":       staff.Name,
			"role":       string(staff.Role),
			"password":   staff.Password,
			"updated_at": staff.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": staff.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update staff SQL")
		return fmt.Errorf("failed to build update staff query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("staffID", staff.ID).Msg("Error executing update staff query")
		return fmt.Errorf("error updating staff: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}
	return nil
}
