// Package mongodb stores portal records in MongoDB collections.
package mongodb

import (
	"context"
	"fmt"

	"github.com/yigit/studentportal/internal/app/repositories"
	"github.com/yigit/studentportal/internal/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	StudentsCollection     = "students"
	CertificatesCollection = "certificates"
	StaffCollection        = "staff"
	CategoriesCollection   = "categories"
)

// NewRepositories initializes all repositories on top of db
func NewRepositories(db *mongo.Database) *repositories.Repositories {
	return &repositories.Repositories{
		StudentRepository:     NewStudentRepository(db),
		CertificateRepository: NewCertificateRepository(db),
		StaffRepository:       NewStaffRepository(db),
		CourseRepository:      NewCourseRepository(db),
	}
}

// EnsureIndexes creates the unique and sort indexes the repositories rely on
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		StudentsCollection: {
			{Keys: bson.D{{Key: "nic", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_nic")},
			{Keys: bson.D{{Key: "appliedDate", Value: -1}}, Options: options.Index().SetName("applied_date_desc")},
		},
		CertificatesCollection: {
			{Keys: bson.D{{Key: "studentId", Value: 1}}, Options: options.Index().SetName("student_id")},
			{Keys: bson.D{{Key: "uploadDate", Value: -1}}, Options: options.Index().SetName("upload_date_desc")},
		},
		StaffCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			logger.Error().Err(err).Str("collection", collection).Msg("Error creating indexes")
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}
	return nil
}
