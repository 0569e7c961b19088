// Package models defines the entities persisted in the training hub's local
// store: user accounts, the course catalog, per-user course progress, and the
// session snapshot mirrored from the user store.
package models

import "time"

// User is an identity record. Email is the primary key; at most one User
// exists per email. Users are created once at registration and never
// deleted; only LastLogin and PasswordHash change afterwards.
type User struct {
	// Email is the case-sensitive primary key.
	Email string

	// Name is the user's display name.
	Name string

	// Phone is the contact phone number.
	Phone string

	// PasswordHash is the encoded salted hash of the password. The raw
	// password is never stored.
	PasswordHash string

	// CreatedAt is the registration time in UTC.
	CreatedAt time.Time

	// LastLogin is the time of the most recent successful login in UTC.
	LastLogin time.Time
}
