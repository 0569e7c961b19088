package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/4citeB4U/AllwaysTrucking/internal/common"
	"github.com/4citeB4U/AllwaysTrucking/internal/dbx"
	"github.com/4citeB4U/AllwaysTrucking/internal/models"
	"github.com/4citeB4U/AllwaysTrucking/internal/repositories/progress"
	"github.com/4citeB4U/AllwaysTrucking/internal/storage"
)

// upsert retry policy. Losing a race costs one re-read, so a couple of
// quick attempts is plenty; anything still conflicting after that surfaces
// as common.ErrConflict.
const (
	upsertRetries = 3
	upsertBackoff = 20 * time.Millisecond
)

// ProgressService records and reports per-user course progress.
type ProgressService struct {
	db *sql.DB
}

func NewProgressService(db *sql.DB) *ProgressService {
	return &ProgressService{db: db}
}

// RecordProgress upserts the progress record for (userEmail, courseID):
// the first call for a pair creates the record, later calls mutate it in
// place, keeping its surrogate id. percent outside 0-100 fails with
// common.ErrInvalidArgument.
//
// The read-decide-write sequence runs in one transaction. If two calls for
// the same pair interleave anyway, the composite unique index rejects the
// losing insert; that loser retries and lands in the update path, so its
// intent is still applied. When retries run out the caller gets
// common.ErrConflict and may replay the whole call.
func (s *ProgressService) RecordProgress(ctx context.Context, userEmail string, courseID int64, percent int, completed bool) (*models.ProgressRecord, error) {
	if err := validate.Var(percent, "gte=0,lte=100"); err != nil {
		return nil, fmt.Errorf("%w: percent %d out of range", common.ErrInvalidArgument, percent)
	}
	if userEmail == "" {
		return nil, fmt.Errorf("%w: empty user email", common.ErrInvalidArgument)
	}

	var rec *models.ProgressRecord

	backoff := retry.WithMaxRetries(upsertRetries, retry.NewConstant(upsertBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		r, err := s.upsertOnce(ctx, userEmail, courseID, percent, completed)
		if err != nil {
			if errors.Is(err, common.ErrDuplicateKey) || errors.Is(err, common.ErrConflict) || storage.IsBusy(err) {
				return retry.RetryableError(fmt.Errorf("%w: %v", common.ErrConflict, err))
			}
			return err
		}
		rec = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// upsertOnce performs one attempt of the read-decide-write sequence as a
// single transaction scope.
func (s *ProgressService) upsertOnce(ctx context.Context, userEmail string, courseID int64, percent int, completed bool) (*models.ProgressRecord, error) {
	var rec *models.ProgressRecord

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := progress.NewSQLiteRepository(tx)

		existing, err := repo.GetByUserCourse(ctx, userEmail, courseID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if existing != nil {
			existing.Progress = percent
			existing.Completed = completed
			existing.UpdatedAt = now
			if err := repo.Update(ctx, existing); err != nil {
				return err
			}
			rec = existing
			return nil
		}

		fresh := &models.ProgressRecord{
			UserEmail: userEmail,
			CourseID:  courseID,
			Progress:  percent,
			Completed: completed,
			StartedAt: now,
			UpdatedAt: now,
		}
		if err := repo.Add(ctx, fresh); err != nil {
			return err
		}
		rec = fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListForUser returns all of a user's progress records, ordered by course.
func (s *ProgressService) ListForUser(ctx context.Context, userEmail string) ([]models.ProgressRecord, error) {
	return progress.NewSQLiteRepository(s.db).ListByUser(ctx, userEmail)
}
