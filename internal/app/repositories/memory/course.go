package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/app/repositories"
)

type courseRepository struct {
	db *DB
}

// NewCourseRepository creates a catalog repository on the in-memory database
func NewCourseRepository(db *DB) repositories.CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) List(_ context.Context) ([]*models.Category, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	categories := make([]*models.Category, 0, len(r.db.categories))
	for _, c := range r.db.categories {
		cp := *c
		categories = append(categories, &cp)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (r *courseRepository) Create(_ context.Context, category *models.Category) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	cp := *category
	r.db.categories[category.ID] = &cp
	return nil
}

func (r *courseRepository) ReplaceAll(_ context.Context, categories []models.Category) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	r.db.categories = make(map[string]*models.Category, len(categories))
	for i := range categories {
		c := categories[i]
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		r.db.categories[c.ID] = &c
	}
	return nil
}

func (r *courseRepository) Count(_ context.Context) (int64, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()
	return int64(len(r.db.categories)), nil
}
