package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/4citeB4U/AllwaysTrucking/internal/common"
	"github.com/4citeB4U/AllwaysTrucking/internal/dbx"
	"github.com/4citeB4U/AllwaysTrucking/internal/models"
	"github.com/4citeB4U/AllwaysTrucking/internal/repositories/courses"
)

// CatalogService serves the course catalog.
type CatalogService struct {
	db *sql.DB
}

func NewCatalogService(db *sql.DB) *CatalogService {
	return &CatalogService{db: db}
}

// Seed upserts the built-in catalog in one transaction. Re-running it
// refreshes field values without duplicating records, so it is safe on
// every startup.
func (s *CatalogService) Seed(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := courses.NewSQLiteRepository(tx)
		for i := range defaultCourses {
			if err := repo.Put(ctx, &defaultCourses[i]); err != nil {
				return fmt.Errorf("seed course %d: %w", defaultCourses[i].ID, err)
			}
		}
		return nil
	})
}

// List returns all courses ordered by id.
func (s *CatalogService) List(ctx context.Context) ([]models.Course, error) {
	return courses.NewSQLiteRepository(s.db).GetAll(ctx)
}

// ListByCategory returns the courses in one category.
func (s *CatalogService) ListByCategory(ctx context.Context, category string) ([]models.Course, error) {
	return courses.NewSQLiteRepository(s.db).GetByCategory(ctx, category)
}

// Get returns one course, failing with common.ErrorNotFound if the id is
// unknown.
func (s *CatalogService) Get(ctx context.Context, id int64) (*models.Course, error) {
	c, err := courses.NewSQLiteRepository(s.db).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("course %d: %w", id, common.ErrorNotFound)
	}
	return c, nil
}

// defaultCourses is the training catalog shipped with the application.
var defaultCourses = []models.Course{
	{
		ID:          1,
		Title:       "CDL Continuing Education & Refresher Course",
		Description: "Helps experienced drivers stay current with regulations, safety, and industry best practices. Not for new CDL or first-time endorsements.",
		Image:       "images/course-cdl-refresher.jpg",
		Category:    "cdl",
		Modules:     8,
		Duration:    "8 hours",
		Price:       99,
	},
	{
		ID:          2,
		Title:       "Dispatcher Training & Load Management",
		Description: "Teaches load planning, communication, TMS software, customer service, and regulatory compliance for dispatchers and logistics staff.",
		Image:       "images/course-dispatcher.jpg",
		Category:    "dispatcher",
		Modules:     6,
		Duration:    "6 hours",
		Price:       79,
	},
	{
		ID:          3,
		Title:       "Hours of Service & Logbook Compliance",
		Description: "Covers federal and state hours-of-service rules, ELD use, and proper recordkeeping for drivers and dispatchers.",
		Image:       "images/course-hos.jpg",
		Category:    "compliance",
		Modules:     4,
		Duration:    "4 hours",
		Price:       59,
	},
	{
		ID:          4,
		Title:       "Vehicle Inspection & Preventative Maintenance",
		Description: "Focuses on pre-trip, en-route, and post-trip inspections, plus basic maintenance and troubleshooting.",
		Image:       "images/course-inspection.jpg",
		Category:    "maintenance",
		Modules:     5,
		Duration:    "5 hours",
		Price:       69,
	},
	{
		ID:          5,
		Title:       "Defensive Driving & Accident Prevention",
		Description: "Teaches safe driving techniques, hazard perception, and strategies to avoid accidents and violations.",
		Image:       "images/course-defensive.jpg",
		Category:    "safety",
		Modules:     6,
		Duration:    "6 hours",
		Price:       79,
	},
	{
		ID:          6,
		Title:       "Transportation Management System (TMS) Training",
		Description: "Hands-on instruction for dispatchers and drivers on using modern TMS software for load management, tracking, and communication.",
		Image:       "images/course-tms.jpg",
		Category:    "technology",
		Modules:     7,
		Duration:    "7 hours",
		Price:       89,
	},
	{
		ID:          7,
		Title:       "Customer Service & Communication for Drivers & Dispatchers",
		Description: "Develops skills for interacting with customers, shippers, and receivers, including conflict resolution and professional communication.",
		Image:       "images/course-customer-service.jpg",
		Category:    "customer-service",
		Modules:     5,
		Duration:    "5 hours",
		Price:       69,
	},
	{
		ID:          8,
		Title:       "Fleet Safety & Compliance Overview",
		Description: "Provides a comprehensive look at fleet safety programs, DOT compliance, drug and alcohol testing, and safety management systems.",
		Image:       "images/course-fleet-safety.jpg",
		Category:    "safety",
		Modules:     8,
		Duration:    "8 hours",
		Price:       99,
	},
}
