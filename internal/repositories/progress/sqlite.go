package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/4citeB4U/AllwaysTrucking/internal/common"
	"github.com/4citeB4U/AllwaysTrucking/internal/dbx"
	"github.com/4citeB4U/AllwaysTrucking/internal/models"
	"github.com/4citeB4U/AllwaysTrucking/internal/storage"
	"github.com/4citeB4U/AllwaysTrucking/internal/timex"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or
// *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, rec *models.ProgressRecord) error {
	query := `INSERT INTO progress (user_email, course_id, progress, completed, started_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		rec.UserEmail, rec.CourseID, rec.Progress, rec.Completed,
		timex.FormatStamp(rec.StartedAt), timex.FormatStamp(rec.UpdatedAt))
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return fmt.Errorf("progress for (%s, %d): %w", rec.UserEmail, rec.CourseID, common.ErrDuplicateKey)
		}
		if storage.IsBusy(err) {
			return fmt.Errorf("insert progress: %w", common.ErrConflict)
		}
		return fmt.Errorf("failed to insert progress: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get progress id: %w", err)
	}
	rec.ID = id
	return nil
}

func (r *SQLiteRepository) Update(ctx context.Context, rec *models.ProgressRecord) error {
	query := `UPDATE progress SET progress = ?, completed = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		rec.Progress, rec.Completed, timex.FormatStamp(rec.UpdatedAt), rec.ID)
	if err != nil {
		if storage.IsBusy(err) {
			return fmt.Errorf("update progress: %w", common.ErrConflict)
		}
		return fmt.Errorf("failed to update progress: %w", err)
	}

	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return fmt.Errorf("progress record %d: %w", rec.ID, common.ErrorNotFound)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id int64) (*models.ProgressRecord, error) {
	query := `SELECT id, user_email, course_id, progress, completed, started_at, updated_at
	          FROM progress WHERE id = ?`
	return r.queryOne(ctx, query, id)
}

func (r *SQLiteRepository) GetByUserCourse(ctx context.Context, userEmail string, courseID int64) (*models.ProgressRecord, error) {
	query := `SELECT id, user_email, course_id, progress, completed, started_at, updated_at
	          FROM progress WHERE user_email = ? AND course_id = ?`
	return r.queryOne(ctx, query, userEmail, courseID)
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userEmail string) ([]models.ProgressRecord, error) {
	query := `SELECT id, user_email, course_id, progress, completed, started_at, updated_at
	          FROM progress WHERE user_email = ? ORDER BY course_id`
	rows, err := r.db.QueryContext(ctx, query, userEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to select progress: %w", err)
	}
	defer rows.Close()

	var result []models.ProgressRecord
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) queryOne(ctx context.Context, query string, args ...any) (*models.ProgressRecord, error) {
	row := r.db.QueryRowContext(ctx, query, args...)

	rec, err := scanRecord(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return rec, nil
}

func scanRecord(scan func(dest ...any) error) (*models.ProgressRecord, error) {
	var rec models.ProgressRecord
	var startedAt, updatedAt string
	if err := scan(&rec.ID, &rec.UserEmail, &rec.CourseID, &rec.Progress,
		&rec.Completed, &startedAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if rec.StartedAt, err = timex.ParseStamp(startedAt); err != nil {
		return nil, fmt.Errorf("bad started_at for record %d: %w", rec.ID, err)
	}
	if rec.UpdatedAt, err = timex.ParseStamp(updatedAt); err != nil {
		return nil, fmt.Errorf("bad updated_at for record %d: %w", rec.ID, err)
	}
	return &rec, nil
}
