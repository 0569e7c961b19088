package users

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

func (r *SQLiteRepository) Add(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (email, name, phone, password_hash, created_at, last_login)
	          VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		user.Email, user.Name, user.Phone, user.PasswordHash,
		timex.FormatStamp(user.CreatedAt), timex.FormatStamp(user.LastLogin))
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return fmt.Errorf("user %s: %w", user.Email, common.ErrDuplicateKey)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Put(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (email, name, phone, password_hash, created_at, last_login)
	          VALUES (?, ?, ?, ?, ?, ?)
	          ON CONFLICT(email) DO UPDATE SET name = excluded.name,
	              phone = excluded.phone,
	              password_hash = excluded.password_hash,
	              created_at = excluded.created_at,
	              last_login = excluded.last_login`
	_, err := r.db.ExecContext(ctx, query,
		user.Email, user.Name, user.Phone, user.PasswordHash,
		timex.FormatStamp(user.CreatedAt), timex.FormatStamp(user.LastLogin))
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT email, name, phone, password_hash, created_at, last_login
	          FROM users WHERE email = ?`
	row := r.db.QueryRowContext(ctx, query, email)

	user, err := scanUser(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT email, name, phone, password_hash, created_at, last_login
	          FROM users ORDER BY email`
	return r.queryUsers(ctx, query)
}

func (r *SQLiteRepository) GetByName(ctx context.Context, name string) ([]models.User, error) {
	query := `SELECT email, name, phone, password_hash, created_at, last_login
	          FROM users WHERE name = ? ORDER BY email`
	return r.queryUsers(ctx, query, name)
}

func (r *SQLiteRepository) GetByPhone(ctx context.Context, phone string) ([]models.User, error) {
	query := `SELECT email, name, phone, password_hash, created_at, last_login
	          FROM users WHERE phone = ? ORDER BY email`
	return r.queryUsers(ctx, query, phone)
}

func (r *SQLiteRepository) queryUsers(ctx context.Context, query string, args ...any) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		user, err := scanUser(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanUser(scan func(dest ...any) error) (*models.User, error) {
	var u models.User
	var createdAt, lastLogin string
	if err := scan(&u.Email, &u.Name, &u.Phone, &u.PasswordHash, &createdAt, &lastLogin); err != nil {
		return nil, err
	}

	var err error
	if u.CreatedAt, err = timex.ParseStamp(createdAt); err != nil {
		return nil, fmt.Errorf("bad created_at for %s: %w", u.Email, err)
	}
	if u.LastLogin, err = timex.ParseStamp(lastLogin); err != nil {
		return nil, fmt.Errorf("bad last_login for %s: %w", u.Email, err)
	}
	return &u, nil
}
