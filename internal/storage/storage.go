// Package storage opens the process-wide handle to the local SQLite store
// and keeps its schema current. The schema is versioned: goose applies any
// embedded migration not yet recorded and skips the rest, so Open is safe to
// call against both a fresh file and an already-migrated one.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/4citeB4U/AllwaysTrucking/internal/common"
	"github.com/4citeB4U/AllwaysTrucking/internal/storage/migrations"
)

// Open opens (creating if necessary) the SQLite database at dsn and brings
// its schema up to date. Any failure wraps common.ErrSchema; the caller must
// treat that as fatal, since no store operation is valid without the schema.
//
// The returned handle is shared by all transactions for the life of the
// process. SQLite allows a single writer, so the pool is capped at one
// connection; concurrent callers serialize on it instead of failing with
// SQLITE_BUSY.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", common.ErrSchema, dsn, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: set busy_timeout: %v", common.ErrSchema, err)
	}

	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: migrate %s: %v", common.ErrSchema, dsn, err)
	}

	return db, nil
}

// Migrate applies all embedded migrations that have not been applied yet.
// Calling it repeatedly is a no-op once the schema is current.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}
