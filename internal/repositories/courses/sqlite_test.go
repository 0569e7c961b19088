package courses

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func sampleCourse(id int64) *models.Course {
	return &models.Course{
		ID:          id,
		Title:       "Hours of Service & Logbook Compliance",
		Description: "Covers hours-of-service rules and recordkeeping.",
		Image:       "images/hos.jpg",
		Category:    "compliance",
		Modules:     4,
		Duration:    "4 hours",
		Price:       59,
	}
}

func TestPutAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	c := sampleCourse(3)
	require.NoError(t, r.Put(ctx, c))

	got, err := r.Get(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *c, *got)
}

func TestGet_AbsentReturnsNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	got, err := r.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPut_ReplacesWithoutDuplicating(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	c := sampleCourse(3)
	require.NoError(t, r.Put(ctx, c))

	c.Price = 49
	c.Title = "HOS Compliance (2025 update)"
	require.NoError(t, r.Put(ctx, c))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 49.0, all[0].Price)
	assert.Equal(t, "HOS Compliance (2025 update)", all[0].Title)
}

func TestGetAll_OrderedByID(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	for _, id := range []int64{5, 1, 3} {
		c := sampleCourse(id)
		require.NoError(t, r.Put(ctx, c))
	}

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(3), all[1].ID)
	assert.Equal(t, int64(5), all[2].ID)
}

func TestIndexLookups(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	safety := sampleCourse(1)
	safety.Category = "safety"
	safety.Title = "Defensive Driving"
	require.NoError(t, r.Put(ctx, safety))

	compliance := sampleCourse(2)
	require.NoError(t, r.Put(ctx, compliance))

	byCat, err := r.GetByCategory(ctx, "safety")
	require.NoError(t, err)
	require.Len(t, byCat, 1)
	assert.Equal(t, int64(1), byCat[0].ID)

	byTitle, err := r.GetByTitle(ctx, "Defensive Driving")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, int64(1), byTitle[0].ID)

	none, err := r.GetByCategory(ctx, "cooking")
	require.NoError(t, err)
	assert.Empty(t, none)
}
