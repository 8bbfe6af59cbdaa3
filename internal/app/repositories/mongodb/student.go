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
	"github.com/yigit/studentportal/internal/pkg/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StudentRepository handles student documents
type StudentRepository struct {
	col *mongo.Collection
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{col: db.Collection(StudentsCollection)}
}

var _ repositories.StudentRepository = (*StudentRepository)(nil)

// List returns the students matching filter
func (r *StudentRepository) List(ctx context.Context, filter query.Predicate, order query.Sort) ([]*models.Student, error) {
	doc, err := bsonFilter(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build student filter: %w", err)
	}

	cursor, err := r.col.Find(ctx, doc, options.Find().SetSort(bsonSort(order)))
	if err != nil {
		logger.Error().Err(err).Msg("Error querying students")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer cursor.Close(ctx)

	students := []*models.Student{}
	if err := cursor.All(ctx, &students); err != nil {
		logger.Error().Err(err).Msg("Error decoding student documents")
		return nil, fmt.Errorf("error decoding students: %w", err)
	}
	return students, nil
}

// GetByID retrieves a student by id
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	filter, ok := idFilter(id)
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}

	var student models.Student
	err := r.col.FindOne(ctx, filter).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error finding student")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}
	return &student, nil
}

// Create inserts a new student and assigns its id
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = newID()
	}
	now := time.Now().UTC()
	student.CreatedAt, student.UpdatedAt = now, now

	doc, err := toDocument(student, student.ID)
	if err != nil {
		return err
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrNICExists
		}
		logger.Error().Err(err).Str("nic", student.NIC).Msg("Error inserting student")
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// Update sets the given fields and returns the updated document
func (r *StudentRepository) Update(ctx context.Context, id string, update models.StudentUpdate) (*models.Student, error) {
	filter, ok := idFilter(id)
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}

	set := bson.M{}
	for field, value := range update.Changes() {
		set[documentField(field)] = value
	}
	set[models.StudentFieldUpdatedAt] = time.Now().UTC()

	var student models.Student
	err := r.col.FindOneAndUpdate(ctx,
		filter,
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrStudentNotFound
		}
		if dberrors.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrNICExists
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error updating student")
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return &student, nil
}

// Delete removes a student permanently
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	filter, ok := idFilter(id)
	if !ok {
		return apperrors.ErrStudentNotFound
	}

	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Str("studentID", id).Msg("Error deleting student")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// NICExists reports whether a student other than excludeID is registered with nic
func (r *StudentRepository) NICExists(ctx context.Context, nic, excludeID string) (bool, error) {
	filter := bson.M{"nic": nic}
	if exclude, ok := idFilter(excludeID); ok {
		filter["_id"] = bson.M{"$ne": exclude["_id"]}
	}
	n, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		logger.Error().Err(err).Str("nic", nic).Msg("Error checking NIC")
		return false, fmt.Errorf("error checking NIC: %w", err)
	}
	return n > 0, nil
}
