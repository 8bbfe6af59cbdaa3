package repositories

import (
	"context"

	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/pkg/query"
)

// StudentRepository defines the storage operations for registrations
type StudentRepository interface {
	// List returns the students matching filter in the given order
	List(ctx context.Context, filter query.Predicate, order query.Sort) ([]*models.Student, error)
	GetByID(ctx context.Context, id string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	// Update applies the set fields of update and returns the stored result
	Update(ctx context.Context, id string, update models.StudentUpdate) (*models.Student, error)
	Delete(ctx context.Context, id string) error
	// NICExists reports whether another student (not excludeID) holds nic
	NICExists(ctx context.Context, nic, excludeID string) (bool, error)
}

// CertificateRepository defines the storage operations for certificate metadata
type CertificateRepository interface {
	List(ctx context.Context, filter query.Predicate, order query.Sort) ([]*models.Certificate, error)
	GetByID(ctx context.Context, id string) (*models.Certificate, error)
	Create(ctx context.Context, certificate *models.Certificate) error
	UpdateStatus(ctx context.Context, id string, status models.CertificateStatus) (*models.Certificate, error)
}

// StaffRepository defines the storage operations for admin accounts
type StaffRepository interface {
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
	Create(ctx context.Context, staff *models.Staff) error
	// Update overwrites name, role and password of an existing account
	Update(ctx context.Context, staff *models.Staff) error
}

// CourseRepository defines the storage operations for the course catalog
type CourseRepository interface {
	// List returns all categories ordered by name
	List(ctx context.Context) ([]*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	// ReplaceAll deletes every category and inserts the given ones
	ReplaceAll(ctx context.Context, categories []models.Category) error
	Count(ctx context.Context) (int64, error)
}

// Repositories holds all the repository instances of one storage backend
type Repositories struct {
	StudentRepository     StudentRepository
	CertificateRepository CertificateRepository
	StaffRepository       StaffRepository
	CourseRepository      CourseRepository
}
