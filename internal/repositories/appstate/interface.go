// Package appstate is a durable key/value store for small application
// state that lives outside the entity stores, such as the current session
// snapshot. Values are opaque bytes; callers own serialization.
package appstate

import "context"

// Repository describes the key/value operations.
type Repository interface {
	// Get returns the value for key, or (nil, nil) if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set upserts the value for key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}
