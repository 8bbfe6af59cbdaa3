package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/app/repositories"
	"github.com/yigit/studentportal/internal/pkg/logger"
)

// CourseRepository handles the course_categories table. Nested courses live in JSONB columns.
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: statementBuilder,
	}
}

var _ repositories.CourseRepository = (*CourseRepository)(nil)

// List returns every category ordered by name
func (r *CourseRepository) List(ctx context.Context) ([]*models.Category, error) {
	sql, args, err := r.sb.Select("id", "name", "courses", "subcategories").
		From("course_categories").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list categories SQL")
		return nil, fmt.Errorf("failed to build list categories query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list categories query")
		return nil, fmt.Errorf("error querying categories: %w", err)
	}
	defer rows.Close()

	categories := []*models.Category{}
	for rows.Next() {
		c := &models.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Courses, &c.Subcategories); err != nil {
			logger.Error().Err(err).Msg("Error scanning category row")
			return nil, fmt.Errorf("error scanning category row: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating category rows")
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}

func (r *CourseRepository) insertSQL(category *models.Category) (string, []interface{}, error) {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	courses := category.Courses
	if courses == nil {
		courses = []models.Course{}
	}
	subcategories := category.Subcategories
	if subcategories == nil {
		subcategories = []models.Subcategory{}
	}
	return r.sb.Insert("course_categories").
		Columns("id", "name", "courses", "subcategories").
		Values(category.ID, category.Name, courses, subcategories).
		ToSql()
}

// Create inserts a category
func (r *CourseRepository) Create(ctx context.Context, category *models.Category) error {
	sql, args, err := r.insertSQL(category)
	if err != nil {
		logger.Error().Err(err).Msg("Error building create category SQL")
		return fmt.Errorf("failed to build create category query: %w", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("category", category.Name).Msg("Error executing create category query")
		return fmt.Errorf("error creating category: %w", err)
	}
	return nil
}

// ReplaceAll swaps the whole catalog in one transaction
func (r *CourseRepository) ReplaceAll(ctx context.Context, categories []models.Category) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM course_categories"); err != nil {
		logger.Error().Err(err).Msg("Error clearing categories")
		return fmt.Errorf("error clearing categories: %w", err)
	}

	for i := range categories {
		sql, args, err := r.insertSQL(&categories[i])
		if err != nil {
			return fmt.Errorf("failed to build create category query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			logger.Error().Err(err).Str("category", categories[i].Name).Msg("Error inserting category")
			return fmt.Errorf("error inserting category: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Count returns the number of categories
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("course_categories").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count categories query: %w", err)
	}
	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		logger.Error().Err(err).Msg("Error counting categories")
		return 0, fmt.Errorf("error counting categories: %w", err)
	}
	return n, nil
}
