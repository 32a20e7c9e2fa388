// Package cli is the terminal front end of the CarbonTrail client: a
// REPL whose commands navigate between named views. Every navigation
// passes through the route guard; the session, auth and API plumbing is
// wired together here.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/carbontrail/carbontrail/internal/client/api"
	"github.com/carbontrail/carbontrail/internal/client/auth"
	"github.com/carbontrail/carbontrail/internal/client/config"
	"github.com/carbontrail/carbontrail/internal/client/localdb"
	"github.com/carbontrail/carbontrail/internal/client/session"
	"github.com/carbontrail/carbontrail/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB
	store  *session.Store
	auth   *auth.Service
	api    *api.Client

	reader *bufio.Reader
	out    io.Writer

	// pendingView is the navigation stashed by a redirect-to-login,
	// replayed after the next successful login.
	pendingView string
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := localdb.Open(ctx, cfg.LocalDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize local database: %w", err)
	}

	store := session.NewStore(session.NewSQLiteStorage(db), log)

	app := &App{
		config: cfg,
		log:    log,
		db:     db,
		store:  store,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	app.api = api.NewClient(cfg.ServerBaseURL, api.Options{
		Credential:     func() string { return store.Current().Credential },
		OnUnauthorized: func() { app.auth.HandleUnauthorized() },
		Timeout:        cfg.RequestTimeout,
	}, log)

	app.auth = auth.NewService(store, app.api, app.onForcedLogout, log)

	return app, nil
}

// Run rehydrates the session and hands control to the REPL.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	a.log.Debug(ctx, "starting client", "server", a.config.ServerBaseURL, "db", a.config.LocalDBPath)

	state := a.auth.Initialize(ctx)
	snap := a.store.Current()
	if state == auth.StateAuthenticated {
		fmt.Fprintf(a.out, "Welcome back, %s (%s)\n", snap.DisplayName, snap.Role)
	} else {
		fmt.Fprintln(a.out, "Welcome to CarbonTrail (type 'help' for commands)")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.store.Current().Authenticated()
}

// status feeds the REPL prompt.
func (a *App) status() string {
	snap := a.store.Current()
	if !snap.Authenticated() {
		return "(anonymous)"
	}
	return fmt.Sprintf("(%s %s)", snap.DisplayName, snap.Role)
}

// onForcedLogout is the redirect-to-login side of a forced logout. The
// session is already cleared by the auth service; here we only move the
// UI to the login view.
func (a *App) onForcedLogout() {
	a.pendingView = ""
	fmt.Fprintln(a.out, "Your session is no longer valid. Please log in again.")
}
