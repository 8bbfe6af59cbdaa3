package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/app/repositories"
	"github.com/yigit/studentportal/internal/pkg/apperrors"
)

type staffRepository struct {
	db *DB
}

// NewStaffRepository creates a staff repository on the in-memory database
func NewStaffRepository(db *DB) repositories.StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) GetByID(_ context.Context, id string) (*models.Staff, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	s, ok := r.db.staff[id]
	if !ok {
		return nil, apperrors.ErrStaffNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *staffRepository) GetByEmail(_ context.Context, email string) (*models.Staff, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	for _, s := range r.db.staff {
		if s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, apperrors.ErrStaffNotFound
}

func (r *staffRepository) Create(_ context.Context, staff *models.Staff) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	for _, s := range r.db.staff {
		if s.Email == staff.Email {
			return apperrors.ErrStaffEmailExists
		}
	}
	if staff.ID == "" {
		staff.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	staff.CreatedAt, staff.UpdatedAt = now, now

	cp := *staff
	r.db.staff[staff.ID] = &cp
	return nil
}

func (r *staffRepository) Update(_ context.Context, staff *models.Staff) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	s, ok := r.db.staff[staff.ID]
	if !ok {
		return apperrors.ErrStaffNotFound
	}
	s.Name = staff.Name
	s.Role = staff.Role
	s.Password = staff.Password
	s.UpdatedAt = time.Now().UTC()
	staff.UpdatedAt = s.UpdatedAt
	return nil
}
