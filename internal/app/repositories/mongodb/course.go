package mongodb

import (
	"context"
	"fmt"

	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/app/repositories"
	"github.com/yigit/studentportal/internal/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CourseRepository handles catalog category documents
type CourseRepository struct {
	col *mongo.Collection
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{col: db.Collection(CategoriesCollection)}
}

var _ repositories.CourseRepository = (*CourseRepository)(nil)

// List returns every category ordered by name
func (r *CourseRepository) List(ctx context.Context) ([]*models.Category, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		logger.Error().Err(err).Msg("Error querying categories")
		return nil, fmt.Errorf("error querying categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []*models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		logger.Error().Err(err).Msg("Error decoding category documents")
		return nil, fmt.Errorf("error decoding categories: %w", err)
	}
	return categories, nil
}

// Create inserts a category
func (r *CourseRepository) Create(ctx context.Context, category *models.Category) error {
	if category.ID == "" {
		category.ID = newID()
	}
	doc, err := toDocument(category, category.ID)
	if err != nil {
		return err
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		logger.Error().Err(err).Str("category", category.Name).Msg("Error inserting category")
		return fmt.Errorf("error creating category: %w", err)
	}
	return nil
}

// ReplaceAll drops every category and inserts the given ones
func (r *CourseRepository) ReplaceAll(ctx context.Context, categories []models.Category) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		logger.Error().Err(err).Msg("Error clearing categories")
		return fmt.Errorf("error clearing categories: %w", err)
	}
	if len(categories) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(categories))
	for i := range categories {
		if categories[i].ID == "" {
			categories[i].ID = newID()
		}
		doc, err := toDocument(categories[i], categories[i].ID)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		logger.Error().Err(err).Int("count", len(docs)).Msg("Error inserting categories")
		return fmt.Errorf("error inserting categories: %w", err)
	}
	return nil
}

// Count returns the number of categories
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("Error counting categories")
		return 0, fmt.Errorf("error counting categories: %w", err)
	}
	return n, nil
}
