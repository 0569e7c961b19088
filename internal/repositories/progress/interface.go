// Package progress persists per-user, per-course completion records.
//
// A record's surrogate id is assigned by the store; its real identity is the
// (userEmail, courseId) pair, guarded by a composite unique index. Even when
// two upsert sequences interleave, at most one insert for the same pair can
// succeed — the loser fails with common.ErrDuplicateKey and must re-read.
package progress

import (
	"context"

	"github.com/4citeB4U/AllwaysTrucking/internal/models"
)

// Repository describes storage operations for ProgressRecord rows.
type Repository interface {
	// Add inserts a new record and fills in its store-assigned ID. It fails
	// with common.ErrDuplicateKey if a record for the same
	// (UserEmail, CourseID) pair already exists.
	Add(ctx context.Context, rec *models.ProgressRecord) error

	// Update rewrites an existing record in place, keyed by its surrogate
	// ID. It fails with common.ErrorNotFound if no such record exists.
	Update(ctx context.Context, rec *models.ProgressRecord) error

	// Get returns the record with the given surrogate id, or (nil, nil) if
	// absent.
	Get(ctx context.Context, id int64) (*models.ProgressRecord, error)

	// GetByUserCourse looks a record up by the composite (userEmail,
	// courseId) index, returning (nil, nil) if absent.
	GetByUserCourse(ctx context.Context, userEmail string, courseID int64) (*models.ProgressRecord, error)

	// ListByUser returns all records for the given user, ordered by course.
	ListByUser(ctx context.Context, userEmail string) ([]models.ProgressRecord, error)
}
