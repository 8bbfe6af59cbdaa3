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
	"github.com/yigit/studentportal/internal/pkg/query"
)

// studentColumns maps canonical field names to columns of the students table
var studentColumns = map[string]string{
	models.StudentFieldID:                   "id",
	models.StudentFieldFullName:             "full_name",
	models.StudentFieldDateOfBirth:          "date_of_birth",
	models.StudentFieldAddress:              "address",
	models.StudentFieldPhoneNumber:          "phone_number",
	models.StudentFieldEmail:                "email",
	models.StudentFieldNIC:                  "nic",
	models.StudentFieldMiddleSchoolResults:  "middle_school_results",
	models.StudentFieldHighSchoolResults:    "high_school_results",
	models.StudentFieldCertifications:       "certifications",
	models.StudentFieldPreferredStudyCenter: "preferred_study_center",
	models.StudentFieldSelectedCategory:     "selected_category",
	models.StudentFieldSelectedSubcategory:  "selected_subcategory",
	models.StudentFieldSelectedCourse:       "selected_course",
	models.StudentFieldStatus:               "status",
	models.StudentFieldDisabled:             "disabled",
	models.StudentFieldAppliedDate:          "applied_date",
	models.StudentFieldCreatedAt:            "created_at",
	models.StudentFieldUpdatedAt:            "updated_at",
}

var studentSelectColumns = []string{
	"id", "full_name", "date_of_birth", "address", "phone_number", "email", "nic",
	"middle_school_results", "high_school_results", "certifications", "preferred_study_center",
	"selected_category", "selected_subcategory", "selected_course", "status", "disabled",
	"applied_date", "created_at", "updated_at",
}

// StudentRepository handles the students table
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: statementBuilder,
	}
}

var _ repositories.StudentRepository = (*StudentRepository)(nil)

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	var status string
	err := row.Scan(
		&s.ID, &s.FullName, &s.DateOfBirth, &s.Address, &s.PhoneNumber, &s.Email, &s.NIC,
		&s.MiddleSchoolResults, &s.HighSchoolResults, &s.Certifications, &s.PreferredStudyCenter,
		&s.SelectedCategory, &s.SelectedSubcategory, &s.SelectedCourse, &status, &s.Disabled,
		&s.AppliedDate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Status = models.StudentStatus(status)
	return &s, nil
}

// List returns the students matching filter
func (r *StudentRepository) List(ctx context.Context, filter query.Predicate, order query.Sort) ([]*models.Student, error) {
	where, err := sqlFilter(filter, studentColumns)
	if err != nil {
		return nil, fmt.Errorf("failed to build student filter: %w", err)
	}
	orderBy, err := sqlOrderBy(order, studentColumns)
	if err != nil {
		return nil, fmt.Errorf("failed to build student order: %w", err)
	}

	sql, args, err := r.sb.Select(studentSelectColumns...).
		From("students").
		Where(where).
		OrderBy(orderBy...).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}
	return students, nil
}

// GetByID retrieves a student by id
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrStudentNotFound
	}

	sql, args, err := r.sb.Select(studentSelectColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}
	return s, nil
}

// Create inserts a new student and assigns its id
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	student.CreatedAt, student.UpdatedAt = now, now

	sql, args, err := r.sb.Insert("students").
		Columns(studentSelectColumns...).
		Values(
			student.ID, student.FullName, student.DateOfBirth, student.Address, student.PhoneNumber,
			student.Email, student.NIC, student.MiddleSchoolResults, student.HighSchoolResults,
			student.Certifications, student.PreferredStudyCenter, student.SelectedCategory,
			student.SelectedSubcategory, student.SelectedCourse, string(student.Status), student.Disabled,
			student.AppliedDate, student.CreatedAt, student.UpdatedAt,
		).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, nicConstraint) {
			return apperrors.ErrNICExists
		}
		logger.Error().Err(err).Str("nic", student.NIC).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// nicConstraint is the unique constraint on students.nic
const nicConstraint = "students_nic_key"

// Update sets the given columns and returns the updated row
func (r *StudentRepository) Update(ctx context.Context, id string, update models.StudentUpdate) (*models.Student, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrStudentNotFound
	}

	set := map[string]interface{}{"updated_at": time.Now().UTC()}
	for field, value := range update.Changes() {
		col, err := column(studentColumns, field)
		if err != nil {
			return nil, err
		}
		set[col] = value
	}

	sql, args, err := r.sb.Update("students").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(studentSelectColumns)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return nil, fmt.Errorf("failed to build update student query: %w", err)
	}

	s, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		if dberrors.IsDuplicateConstraintError(err, nicConstraint) {
			return nil, apperrors.ErrNICExists
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error executing update student query")
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return s, nil
}

// Delete removes a student permanently
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrStudentNotFound
	}

	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// NICExists reports whether a student other than excludeID is registered with nic
func (r *StudentRepository) NICExists(ctx context.Context, nic, excludeID string) (bool, error) {
	where := squirrel.And{squirrel.Eq{"nic": nic}}
	if excludeID != "" {
		where = append(where, squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := r.sb.Select("1").
		From("students").
		Where(where).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building NIC exists SQL")
		return false, fmt.Errorf("failed to build NIC exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Str("nic", nic).Msg("Error checking NIC")
		return false, fmt.Errorf("error checking NIC: %w", err)
	}
	return exists, nil
}
