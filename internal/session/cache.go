// Package session keeps track of "who is logged in".
//
// The Cache is a process-wide, lazily-loaded pointer to the current session
// snapshot, backed by the durable app_state store so a login survives
// restarts. It is a convenience mirror of the user store, never a source of
// truth: it is written outside entity transactions, so a crash after a user
// write but before the session write loses only the session.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/4citeB4U/AllwaysTrucking/internal/models"
	"github.com/4citeB4U/AllwaysTrucking/internal/repositories/appstate"
)

// stateKey is the app_state key holding the session snapshot.
const stateKey = "current_user"

// Cache is the process-wide session holder. All methods are safe for
// concurrent use.
type Cache struct {
	mu     sync.Mutex
	store  appstate.Repository
	cur    *models.Session
	loaded bool
}

func NewCache(store appstate.Repository) *Cache {
	return &Cache{store: store}
}

// Set stores the public projection of user as the current session and
// returns the snapshot.
func (c *Cache) Set(ctx context.Context, user *models.User) (*models.Session, error) {
	s := &models.Session{
		ID:         uuid.NewString(),
		Email:      user.Email,
		Name:       user.Name,
		Phone:      user.Phone,
		IsLoggedIn: true,
		LastLogin:  user.LastLogin,
	}

	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Set(ctx, stateKey, b); err != nil {
		return nil, err
	}
	c.cur = s
	c.loaded = true
	return s, nil
}

// Get returns the current session, or nil if nobody is logged in. The
// durable snapshot is read once and cached; an absent or malformed snapshot
// reads as "logged out".
func (c *Cache) Get(ctx context.Context) (*models.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.cur, nil
	}

	b, err := c.store.Get(ctx, stateKey)
	if err != nil {
		return nil, err
	}

	if len(b) > 0 {
		var s models.Session
		if err := json.Unmarshal(b, &s); err == nil && s.IsLoggedIn {
			c.cur = &s
		}
	}
	c.loaded = true
	return c.cur, nil
}

// Clear logs the current user out, removing the durable snapshot.
func (c *Cache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Delete(ctx, stateKey); err != nil {
		return err
	}
	c.cur = nil
	c.loaded = true
	return nil
}

// IsAuthenticated reports whether a session is present. Storage errors read
// as "not authenticated".
func (c *Cache) IsAuthenticated(ctx context.Context) bool {
	s, err := c.Get(ctx)
	return err == nil && s != nil
}
