package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/app/repositories"
	"github.com/yigit/studentportal/internal/pkg/apperrors"
	"github.com/yigit/studentportal/internal/pkg/logger"
	"github.com/yigit/studentportal/internal/pkg/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CertificateRepository handles certificate documents
type CertificateRepository struct {
	col *mongo.Collection
}

// NewCertificateRepository creates a new CertificateRepository
func NewCertificateRepository(db *mongo.Database) *CertificateRepository {
	return &CertificateRepository{col: db.Collection(CertificatesCollection)}
}

var _ repositories.CertificateRepository = (*CertificateRepository)(nil)

// List returns the certificates matching filter
func (r *CertificateRepository) List(ctx context.Context, filter query.Predicate, order query.Sort) ([]*models.Certificate, error) {
	doc, err := bsonFilter(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build certificate filter: %w", err)
	}

	cursor, err := r.col.Find(ctx, doc, options.Find().SetSort(bsonSort(order)))
	if err != nil {
		logger.Error().Err(err).Msg("Error querying certificates")
		return nil, fmt.Errorf("error querying certificates: %w", err)
	}
	defer cursor.Close(ctx)

	certificates := []*models.Certificate{}
	if err := cursor.All(ctx, &certificates); err != nil {
		logger.Error().Err(err).Msg("Error decoding certificate documents")
		return nil, fmt.Errorf("error decoding certificates: %w", err)
	}
	return certificates, nil
}

// GetByID retrieves a certificate by id
func (r *CertificateRepository) GetByID(ctx context.Context, id string) (*models.Certificate, error) {
	filter, ok := idFilter(id)
	if !ok {
		return nil, apperrors.ErrCertificateNotFound
	}

	var certificate models.Certificate
	if err := r.col.FindOne(ctx, filter).Decode(&certificate); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrCertificateNotFound
		}
		logger.Error().Err(err).Str("certificateID", id).Msg("Error finding certificate")
		return nil, fmt.Errorf("error getting certificate by ID: %w", err)
	}
	return &certificate, nil
}

// Create inserts certificate metadata
func (r *CertificateRepository) Create(ctx context.Context, certificate *models.Certificate) error {
	if certificate.ID == "" {
		certificate.ID = newID()
	}
	now := time.Now().UTC()
	certificate.CreatedAt, certificate.UpdatedAt = now, now

	doc, err := toDocument(certificate, certificate.ID)
	if err != nil {
		return err
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		logger.Error().Err(err).Str("studentID", certificate.StudentID).Msg("Error inserting certificate")
		return fmt.Errorf("error creating certificate: %w", err)
	}
	return nil
}

// UpdateStatus records a verification decision
func (r *CertificateRepository) UpdateStatus(ctx context.Context, id string, status models.CertificateStatus) (*models.Certificate, error) {
	filter, ok := idFilter(id)
	if !ok {
		return nil, apperrors.ErrCertificateNotFound
	}

	var certificate models.Certificate
	err := r.col.FindOneAndUpdate(ctx,
		filter,
		bson.M{"$set": bson.M{
			models.CertificateFieldStatus:    status,
			models.CertificateFieldUpdatedAt: time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&certificate)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrCertificateNotFound
		}
		logger.Error().Err(err).Str("certificateID", id).Msg("Error updating certificate status")
		return nil, fmt.Errorf("error updating certificate status: %w", err)
	}
	return &certificate, nil
}
