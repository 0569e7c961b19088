// Package cli implements the interactive terminal front end for the
// training hub: account registration and login, browsing the course
// catalog, and recording course progress.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/4citeB4U/AllwaysTrucking/internal/models"
	"github.com/4citeB4U/AllwaysTrucking/internal/services"
)

// authAPI is the slice of the auth service the CLI needs.
type authAPI interface {
	Register(ctx context.Context, p services.RegisterParams) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.Session, error)
	IsAuthenticated(ctx context.Context) bool
}

type catalogAPI interface {
	List(ctx context.Context) ([]models.Course, error)
	Get(ctx context.Context, id int64) (*models.Course, error)
}

type progressAPI interface {
	RecordProgress(ctx context.Context, userEmail string, courseID int64, percent int, completed bool) (*models.ProgressRecord, error)
	ListForUser(ctx context.Context, userEmail string) ([]models.ProgressRecord, error)
}

// App holds the services behind the REPL commands and the input reader the
// command handlers prompt through.
type App struct {
	auth     authAPI
	catalog  catalogAPI
	progress progressAPI
	reader   *bufio.Reader
}

func NewApp(auth *services.AuthService, catalog *services.CatalogService, progress *services.ProgressService) *App {
	return &App{
		auth:     auth,
		catalog:  catalog,
		progress: progress,
		reader:   bufio.NewReader(os.Stdin),
	}
}

// Run drives the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// status renders the prompt segment: the logged-in email, or "guest".
func (a *App) status() string {
	s, err := a.auth.Current(context.Background())
	if err != nil || s == nil {
		return "guest"
	}
	return s.Email
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.auth.IsAuthenticated(ctx)
}
