package models

import "time"

// ProgressRecord tracks one user's completion state for one course.
// ID is a store-assigned surrogate key; the real identity of a record is the
// (UserEmail, CourseID) pair, which is kept unique by a composite index.
// Records are created on the first progress update for a pair and mutated in
// place afterwards; they are never deleted.
type ProgressRecord struct {
	// ID is the store-assigned surrogate key.
	ID int64

	// UserEmail references User.Email.
	UserEmail string

	// CourseID references Course.ID.
	CourseID int64

	// Progress is the completion percentage, 0-100.
	Progress int

	// Completed marks the course as finished.
	Completed bool

	// StartedAt is when the first update for the pair was recorded, in UTC.
	StartedAt time.Time

	// UpdatedAt is the time of the most recent update, in UTC.
	UpdatedAt time.Time
}
