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

type certificateRepository struct {
	db *DB
}

// NewCertificateRepository creates a certificate repository on the in-memory database
func NewCertificateRepository(db *DB) repositories.CertificateRepository {
	return &certificateRepository{db: db}
}

func (r *certificateRepository) List(_ context.Context, filter query.Predicate, order query.Sort) ([]*models.Certificate, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	certificates := make([]*models.Certificate, 0, len(r.db.certificates))
	for _, c := range r.db.certificates {
		if filter == nil || filter.Match(c) {
			cp := *c
			certificates = append(certificates, &cp)
		}
	}

	if order.Field != "" {
		sort.SliceStable(certificates, func(i, j int) bool { return order.Less(certificates[i], certificates[j]) })
	}
	return certificates, nil
}

func (r *certificateRepository) GetByID(_ context.Context, id string) (*models.Certificate, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	c, ok := r.db.certificates[id]
	if !ok {
		return nil, apperrors.ErrCertificateNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *certificateRepository) Create(_ context.Context, certificate *models.Certificate) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if certificate.ID == "" {
		certificate.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	certificate.CreatedAt, certificate.UpdatedAt = now, now

	cp := *certificate
	r.db.certificates[certificate.ID] = &cp
	return nil
}

func (r *certificateRepository) UpdateStatus(_ context.Context, id string, status models.CertificateStatus) (*models.Certificate, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	c, ok := r.db.certificates[id]
	if !ok {
		return nil, apperrors.ErrCertificateNotFound
	}
	c.Status = status
	c.UpdatedAt = time.Now().UTC()

	cp := *c
	return &cp, nil
}
