package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/app/repositories"
	"github.com/yigit/studentportal/internal/pkg/apperrors"
	"github.com/yigit/studentportal/internal/pkg/dberrors"
	"github.com/yigit/studentportal/internal/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StaffRepository handles staff account documents
type StaffRepository struct {
	col *mongo.Collection
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db *mongo.Database) *StaffRepository {
	return &StaffRepository{col: db.Collection(StaffCollection)}
}

var _ repositories.StaffRepository = (*StaffRepository)(nil)

func (r *StaffRepository) findOne(ctx context.Context, filter bson.M) (*models.Staff, error) {
	var staff models.Staff
	if err := r.col.FindOne(ctx, filter).Decode(&staff); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrStaffNotFound
		}
		logger.Error().Err(err).Msg("Error finding staff")
		return nil, fmt.Errorf("error getting staff: %w", err)
	}
	return &staff, nil
}

// GetByID retrieves a staff account by id
func (r *StaffRepository) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	filter, ok := idFilter(id)
	if !ok {
		return nil, apperrors.ErrStaffNotFound
	}
	return r.findOne(ctx, filter)
}

// GetByEmail retrieves a staff account by its normalized email
func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// Create inserts a staff account
func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	if staff.ID == "" {
		staff.ID = newID()
	}
	now := time.Now().UTC()
	staff.CreatedAt, staff.UpdatedAt = now, now

	doc, err := toDocument(staff, staff.ID)
	if err != nil {
		return err
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrStaffEmailExists
		}
		logger.Error().Err(err).Str("email", staff.Email).Msg("Error inserting staff")
		return fmt.Errorf("error creating staff: %w", err)
	}
	return nil
}

// Update overwrites name, role and password
func (r *StaffRepository) Update(ctx context.Context, staff *models.Staff) error {
	filter, ok := idFilter(staff.ID)
	if !ok {
		return apperrors.ErrStaffNotFound
	}

	staff.UpdatedAt = time.Now().UTC()
	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"name":      staff.Name,
		"role":      staff.Role,
		"password":  staff.Password,
		"updatedAt": staff.UpdatedAt,
	}})
	if err != nil {
		logger.Error().Err(err).Str("staffID", staff.ID).Msg("Error updating staff")
		return fmt.Errorf("error updating staff: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrStaffNotFound
	}
	return nil
}
