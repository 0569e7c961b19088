package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/4citeB4U/AllwaysTrucking/internal/common"
	"github.com/4citeB4U/AllwaysTrucking/internal/cryptox"
	"github.com/4citeB4U/AllwaysTrucking/internal/dbx"
	"github.com/4citeB4U/AllwaysTrucking/internal/models"
	"github.com/4citeB4U/AllwaysTrucking/internal/repositories/users"
	"github.com/4citeB4U/AllwaysTrucking/internal/session"
)

// RegisterParams carries the registration form fields.
type RegisterParams struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required"`
	Password string `validate:"required,min=6"`
}

// AuthService handles registration, login and the session snapshot.
type AuthService struct {
	db       *sql.DB
	sessions *session.Cache
}

func NewAuthService(db *sql.DB, sessions *session.Cache) *AuthService {
	return &AuthService{db: db, sessions: sessions}
}

// Register creates a new user account and logs it in. A second registration
// against the same email fails with common.ErrDuplicateKey and leaves the
// first account untouched.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (*models.User, error) {
	if err := validate.Struct(p); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidArgument, err)
	}

	hash, err := cryptox.HashPassword([]byte(p.Password))
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		Email:        p.Email,
		Name:         p.Name,
		Phone:        p.Phone,
		PasswordHash: hash,
		CreatedAt:    now,
		LastLogin:    now,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return users.NewSQLiteRepository(tx).Add(ctx, user)
	}); err != nil {
		return nil, err
	}

	// The account is durable at this point; a failed session write only
	// costs the convenience snapshot.
	if _, err := s.sessions.Set(ctx, user); err != nil {
		return user, fmt.Errorf("account created, session not saved: %w", err)
	}
	return user, nil
}

// Login verifies credentials, advances LastLogin inside the same read-write
// transaction, and stores the session snapshot. An unknown email fails with
// common.ErrorNotFound, a wrong password with common.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := users.NewSQLiteRepository(tx)

		u, err := repo.Get(ctx, email)
		if err != nil {
			return err
		}
		if u == nil {
			return fmt.Errorf("user %s: %w", email, common.ErrorNotFound)
		}
		if !cryptox.VerifyPassword([]byte(password), u.PasswordHash) {
			return common.ErrInvalidCredentials
		}

		u.LastLogin = time.Now().UTC()
		if err := repo.Put(ctx, u); err != nil {
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.sessions.Set(ctx, user); err != nil {
		return user, fmt.Errorf("logged in, session not saved: %w", err)
	}
	return user, nil
}

// ChangePassword replaces the stored credential after verifying the old one.
func (s *AuthService) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: new password too short", common.ErrInvalidArgument)
	}

	hash, err := cryptox.HashPassword([]byte(newPassword))
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := users.NewSQLiteRepository(tx)

		u, err := repo.Get(ctx, email)
		if err != nil {
			return err
		}
		if u == nil {
			return fmt.Errorf("user %s: %w", email, common.ErrorNotFound)
		}
		if !cryptox.VerifyPassword([]byte(oldPassword), u.PasswordHash) {
			return common.ErrInvalidCredentials
		}

		u.PasswordHash = hash
		return repo.Put(ctx, u)
	})
}

// Logout clears the session snapshot. It never touches the user store.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// Current returns the session snapshot, or nil when logged out.
func (s *AuthService) Current(ctx context.Context) (*models.Session, error) {
	return s.sessions.Get(ctx)
}

// IsAuthenticated reports whether a session snapshot is present.
func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	return s.sessions.IsAuthenticated(ctx)
}
