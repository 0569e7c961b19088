package models

// Course is a catalog entry. ID is caller-assigned; the catalog is
// bulk-seeded at startup via idempotent upsert and read-mostly afterwards.
type Course struct {
	// ID is the caller-assigned primary key.
	ID int64

	// Title is the course title.
	Title string

	// Description is a short human-readable summary.
	Description string

	// Image is the relative path of the course card image asset.
	Image string

	// Category groups courses on the dashboard (e.g. "safety").
	Category string

	// Modules is the number of modules in the course.
	Modules int

	// Duration is the advertised length, e.g. "8 hours".
	Duration string

	// Price is the course price in dollars.
	Price float64
}
