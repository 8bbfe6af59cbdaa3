// Package postgres stores portal records in PostgreSQL tables.
package postgres

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/studentportal/internal/app/repositories"
)

// statementBuilder renders $n placeholders
var statementBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// NewRepositories initializes all repositories on top of the pool
func NewRepositories(db *pgxpool.Pool) *repositories.Repositories {
	return &repositories.Repositories{
		StudentRepository:     NewStudentRepository(db),
		CertificateRepository: NewCertificateRepository(db),
		StaffRepository:       NewStaffRepository(db),
		CourseRepository:      NewCourseRepository(db),
	}
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
