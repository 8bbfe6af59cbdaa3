// Package memory is a process-local storage backend used in development and tests.
package memory

import (
	"context"
	"sync"

	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/app/repositories"
)

// DB holds every table of the in-memory backend
type DB struct {
	mutex        sync.RWMutex
	students     map[string]*models.Student
	certificates map[string]*models.Certificate
	staff        map[string]*models.Staff
	categories   map[string]*models.Category
}

// NewDB creates an empty in-memory database
func NewDB() *DB {
	return &DB{
		students:     make(map[string]*models.Student),
		certificates: make(map[string]*models.Certificate),
		staff:        make(map[string]*models.Staff),
		categories:   make(map[string]*models.Category),
	}
}

// NewRepositories initializes all repositories on top of db
func NewRepositories(db *DB) *repositories.Repositories {
	return &repositories.Repositories{
		StudentRepository:     NewStudentRepository(db),
		CertificateRepository: NewCertificateRepository(db),
		StaffRepository:       NewStaffRepository(db),
		CourseRepository:      NewCourseRepository(db),
	}
}

// Ping always succeeds
func (db *DB) Ping(context.Context) error {
	return nil
}

// Close is a no-op; the data lives as long as the process
func (db *DB) Close(context.Context) error {
	return nil
}
