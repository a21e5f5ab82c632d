// Package cli is the interactive portal: a REPL that stands in for the
// original browser UI. It drives the session manager and the catalog store
// and simulates page navigation through the route guard.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"loginportal/internal/auth"
	"loginportal/internal/catalog"
	"loginportal/internal/config"
	"loginportal/internal/digest"
	"loginportal/internal/guard"
	"loginportal/internal/logging"
	"loginportal/internal/provider"
	"loginportal/internal/session"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	session *auth.Manager
	catalog *catalog.Store
	reader  *bufio.Reader
	path    string
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	db, err := session.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("session db init error: %w", err)
	}

	p := provider.NewHTTPProvider(c.DataServerAddr)
	store := session.NewSQLiteStore(db)

	return &App{
		config:  c,
		log:     log,
		session: auth.NewManager(p, store, digest.NewMD5(), log),
		catalog: catalog.NewStore(p, log),
		reader:  bufio.NewReader(os.Stdin),
		path:    guard.HomePath,
	}, nil
}

// Run restores any persisted session and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	a.session.Restore(ctx)
	if a.session.Authenticated() {
		a.navigate(guard.AccountPath)
	}

	fmt.Println("Login Portal (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

// status is shown in the prompt: current page plus the logged-in username.
func (a *App) status() string {
	s := a.path
	if u := a.session.User(); u != nil {
		s = s + " " + u.Credentials.Username
	}
	return s
}

// navigate moves to path, letting the guard redirect first.
func (a *App) navigate(path string) {
	switch guard.Decide(path, a.session.Authenticated()) {
	case guard.RedirectHome:
		a.path = guard.HomePath
	case guard.RedirectAccount:
		a.path = guard.AccountPath
	default:
		a.path = path
	}
}

// fetchCtx bounds a provider call with the configured request timeout.
func (a *App) fetchCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
