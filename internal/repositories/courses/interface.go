// Package courses persists the course catalog, keyed by caller-assigned id.
package courses

import (
	"context"

	"github.com/4citeB4U/AllwaysTrucking/internal/models"
)

// Repository describes storage operations for Course records. The catalog is
// seeded with Put so re-seeding replaces field values instead of
// duplicating or erroring.
type Repository interface {
	// Put upserts a course by id: insert if absent, full replace if present.
	Put(ctx context.Context, course *models.Course) error

	// Get returns the course with the given id, or (nil, nil) if absent.
	Get(ctx context.Context, id int64) (*models.Course, error)

	// GetAll returns every course, ordered by id.
	GetAll(ctx context.Context) ([]models.Course, error)

	// GetByTitle returns courses with the given title (non-unique index).
	GetByTitle(ctx context.Context, title string) ([]models.Course, error)

	// GetByCategory returns courses in the given category (non-unique index).
	GetByCategory(ctx context.Context, category string) ([]models.Course, error)
}
