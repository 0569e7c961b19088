// Package users persists user accounts in the local store, keyed by email.
package users

import (
	"context"

	"github.com/4citeB4U/AllwaysTrucking/internal/models"
)

// Repository describes storage operations for User records.
//
// Lookups that find nothing return (nil, nil); callers decide whether an
// absent user is an error.
type Repository interface {
	// Add inserts a new user. If a user with the same email already
	// exists, it fails with common.ErrDuplicateKey and leaves the existing
	// record untouched.
	Add(ctx context.Context, user *models.User) error

	// Put upserts a user by email: insert if absent, full replace if
	// present. Used internally for field updates such as LastLogin.
	Put(ctx context.Context, user *models.User) error

	// Get returns the user with the given email, or (nil, nil) if absent.
	Get(ctx context.Context, email string) (*models.User, error)

	// GetAll returns every user, ordered by email.
	GetAll(ctx context.Context) ([]models.User, error)

	// GetByName returns all users with the given display name (the name
	// index is non-unique).
	GetByName(ctx context.Context, name string) ([]models.User, error)

	// GetByPhone returns all users with the given phone number (the phone
	// index is non-unique).
	GetByPhone(ctx context.Context, phone string) ([]models.User, error)
}
