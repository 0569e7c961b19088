package progress

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4citeB4U/AllwaysTrucking/internal/common"
	"github.com/4citeB4U/AllwaysTrucking/internal/models"
	"github.com/4citeB4U/AllwaysTrucking/internal/storage"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "hub.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sampleRecord(email string, courseID int64) *models.ProgressRecord {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &models.ProgressRecord{
		UserEmail: email,
		CourseID:  courseID,
		Progress:  25,
		Completed: false,
		StartedAt: now,
		UpdatedAt: now,
	}
}

func TestAdd_AssignsSurrogateID(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	rec := sampleRecord("dana@example.com", 1)
	require.NoError(t, r.Add(ctx, rec))
	assert.Positive(t, rec.ID)

	other := sampleRecord("dana@example.com", 2)
	require.NoError(t, r.Add(ctx, other))
	assert.NotEqual(t, rec.ID, other.ID)
}

func TestAdd_SecondRecordForPairRejected(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, sampleRecord("dana@example.com", 1)))

	err := r.Add(ctx, sampleRecord("dana@example.com", 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDuplicateKey)

	// Same user, different course and same course, different user are fine.
	require.NoError(t, r.Add(ctx, sampleRecord("dana@example.com", 2)))
	require.NoError(t, r.Add(ctx, sampleRecord("robin@example.com", 1)))
}

func TestGetByUserCourse(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	rec := sampleRecord("dana@example.com", 1)
	require.NoError(t, r.Add(ctx, rec))

	got, err := r.GetByUserCourse(ctx, "dana@example.com", 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, 25, got.Progress)

	absent, err := r.GetByUserCourse(ctx, "dana@example.com", 99)
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestUpdate_MutatesInPlace(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	rec := sampleRecord("dana@example.com", 1)
	require.NoError(t, r.Add(ctx, rec))

	rec.Progress = 100
	rec.Completed = true
	rec.UpdatedAt = rec.UpdatedAt.Add(time.Hour)
	require.NoError(t, r.Update(ctx, rec))

	got, err := r.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.ID, got.ID, "surrogate key must not change")
	assert.Equal(t, 100, got.Progress)
	assert.True(t, got.Completed)
	assert.True(t, got.StartedAt.Equal(rec.StartedAt), "started_at is immutable")
	assert.True(t, got.UpdatedAt.Equal(rec.UpdatedAt))
}

func TestUpdate_UnknownIDIsNotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	rec := sampleRecord("dana@example.com", 1)
	rec.ID = 12345
	err := r.Update(context.Background(), rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestListByUser(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, sampleRecord("dana@example.com", 2)))
	require.NoError(t, r.Add(ctx, sampleRecord("dana@example.com", 1)))
	require.NoError(t, r.Add(ctx, sampleRecord("robin@example.com", 1)))

	recs, err := r.ListByUser(ctx, "dana@example.com")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, int64(1), recs[0].CourseID)
	assert.Equal(t, int64(2), recs[1].CourseID)

	empty, err := r.ListByUser(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
