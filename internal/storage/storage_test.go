package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4citeB4U/AllwaysTrucking/internal/common"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "hub.db")
	db, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func tableNames(t *testing.T, db *sql.DB) map[string]bool {
	t.Helper()
	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table'`)
	require.NoError(t, err)
	defer rows.Close()

	names := map[string]bool{}
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names[name] = true
	}
	require.NoError(t, rows.Err())
	return names
}

func TestOpen_CreatesDeclaredStores(t *testing.T) {
	db := openTestDB(t)

	names := tableNames(t, db)
	for _, want := range []string{"users", "courses", "progress", "app_state"} {
		assert.Truef(t, names[want], "missing store %q", want)
	}
}

func TestOpen_CreatesDeclaredIndexes(t *testing.T) {
	db := openTestDB(t)

	rows, err := db.Query(`SELECT name, sql FROM sqlite_master WHERE type='index' AND sql IS NOT NULL`)
	require.NoError(t, err)
	defer rows.Close()

	indexes := map[string]string{}
	for rows.Next() {
		var name, ddl string
		require.NoError(t, rows.Scan(&name, &ddl))
		indexes[name] = ddl
	}
	require.NoError(t, rows.Err())

	for _, want := range []string{
		"idx_users_name", "idx_users_phone",
		"idx_courses_title", "idx_courses_category",
		"idx_progress_user_email", "idx_progress_course_id",
		"idx_progress_user_course",
	} {
		assert.Containsf(t, indexes, want, "missing index %q", want)
	}

	assert.Contains(t, indexes["idx_progress_user_course"], "UNIQUE",
		"composite user/course index must be unique")
}

func TestOpen_IdempotentAcrossReopens(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "hub.db")

	db, err := Open(ctx, dsn)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO courses (id, title, description, category, modules, duration, price)
		 VALUES (1, 'CDL Refresher', 'desc', 'cdl', 8, '8 hours', 99)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening an already-migrated file must not error or touch data.
	db, err = Open(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM courses`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestOpen_BadPathReportsSchemaError(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "no-such-dir", "hub.db"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrSchema)
}

func TestIsUniqueViolation_OnCompositeIndex(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	insert := `INSERT INTO progress (user_email, course_id, progress, completed, started_at, updated_at)
	           VALUES (?, ?, ?, ?, ?, ?)`

	_, err := db.ExecContext(ctx, insert, "a@x.com", 1, 10, 0, "t0", "t0")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, insert, "a@x.com", 1, 20, 0, "t1", "t1")
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err), "expected unique violation, got: %v", err)
	assert.False(t, IsBusy(err))
}

func TestErrorClassifiers_IgnoreForeignErrors(t *testing.T) {
	err := errors.New("some other failure")
	assert.False(t, IsUniqueViolation(err))
	assert.False(t, IsBusy(err))
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsBusy(nil))
}
