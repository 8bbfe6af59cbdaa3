package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/app/repositories"
	"github.com/yigit/studentportal/internal/pkg/apperrors"
	"github.com/yigit/studentportal/internal/pkg/query"
)

type studentRepository struct {
	db *DB
}

// NewStudentRepository creates a student repository on the in-memory database
func NewStudentRepository(db *DB) repositories.StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) List(_ context.Context, filter query.Predicate, order query.Sort) ([]*models.Student, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	students := make([]*models.Student, 0, len(r.db.students))
	for _, s := range r.db.students {
		if filter == nil || filter.Match(s) {
			cp := *s
			students = append(students, &cp)
		}
	}

	if order.Field != "" {
		sort.SliceStable(students, func(i, j int) bool { return order.Less(students[i], students[j]) })
	}
	return students, nil
}

func (r *studentRepository) GetByID(_ context.Context, id string) (*models.Student, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	s, ok := r.db.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *studentRepository) Create(_ context.Context, student *models.Student) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if r.nicTaken(student.NIC, "") {
		return apperrors.ErrNICExists
	}
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	student.CreatedAt, student.UpdatedAt = now, now

	cp := *student
	r.db.students[student.ID] = &cp
	return nil
}

func (r *studentRepository) Update(_ context.Context, id string, update models.StudentUpdate) (*models.Student, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	s, ok := r.db.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	if update.NIC != nil && r.nicTaken(*update.NIC, id) {
		return nil, apperrors.ErrNICExists
	}

	// only save set fields
	update.Apply(s)
	s.UpdatedAt = time.Now().UTC()

	cp := *s
	return &cp, nil
}

func (r *studentRepository) Delete(_ context.Context, id string) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if _, ok := r.db.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(r.db.students, id)
	return nil
}

func (r *studentRepository) NICExists(_ context.Context, nic, excludeID string) (bool, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()
	return r.nicTaken(nic, excludeID), nil
}

// nicTaken must be called with the mutex held
func (r *studentRepository) nicTaken(nic, excludeID string) bool {
	for id, s := range r.db.students {
		if s.NIC == nic && id != excludeID {
			return true
		}
	}
	return false
}
