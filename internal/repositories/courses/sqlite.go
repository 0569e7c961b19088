package courses

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/4citeB4U/AllwaysTrucking/internal/dbx"
	"github.com/4citeB4U/AllwaysTrucking/internal/models"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or
// *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Put(ctx context.Context, course *models.Course) error {
	query := `INSERT INTO courses (id, title, description, image, category, modules, duration, price)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	          ON CONFLICT(id) DO UPDATE SET title = excluded.title,
	              description = excluded.description,
	              image = excluded.image,
	              category = excluded.category,
	              modules = excluded.modules,
	              duration = excluded.duration,
	              price = excluded.price`
	_, err := r.db.ExecContext(ctx, query,
		course.ID, course.Title, course.Description, course.Image,
		course.Category, course.Modules, course.Duration, course.Price)
	if err != nil {
		return fmt.Errorf("failed to upsert course: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT id, title, description, image, category, modules, duration, price
	          FROM courses WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var c models.Course
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Image,
		&c.Category, &c.Modules, &c.Duration, &c.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return &c, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	query := `SELECT id, title, description, image, category, modules, duration, price
	          FROM courses ORDER BY id`
	return r.queryCourses(ctx, query)
}

func (r *SQLiteRepository) GetByTitle(ctx context.Context, title string) ([]models.Course, error) {
	query := `SELECT id, title, description, image, category, modules, duration, price
	          FROM courses WHERE title = ? ORDER BY id`
	return r.queryCourses(ctx, query, title)
}

func (r *SQLiteRepository) GetByCategory(ctx context.Context, category string) ([]models.Course, error) {
	query := `SELECT id, title, description, image, category, modules, duration, price
	          FROM courses WHERE category = ? ORDER BY id`
	return r.queryCourses(ctx, query, category)
}

func (r *SQLiteRepository) queryCourses(ctx context.Context, query string, args ...any) ([]models.Course, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select courses: %w", err)
	}
	defer rows.Close()

	var result []models.Course
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Image,
			&c.Category, &c.Modules, &c.Duration, &c.Price); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
