package models

import "time"

// Session is the durable snapshot of the currently authenticated user's
// public fields. It mirrors the user store and never originates data;
// absence means "logged out".
type Session struct {
	// ID identifies this login session.
	ID string `json:"id"`

	// Email, Name and Phone are copied from the User record.
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`

	// IsLoggedIn is true for any stored session.
	IsLoggedIn bool `json:"isLoggedIn"`

	// LastLogin is the login time recorded on the User, in UTC.
	LastLogin time.Time `json:"lastLogin"`
}
