package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/carbontrail/carbontrail/internal/client/api"
	"github.com/carbontrail/carbontrail/internal/client/auth"
)

// Login runs the interactive login view. On success, a navigation that
// was interrupted by a redirect-to-login is replayed.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already logged in. Use 'logout' first to switch accounts.")
		return nil
	}

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, email, password); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			fmt.Fprintf(a.out, "Login failed: %v\n", err)
		case errors.Is(err, api.ErrUnavailable):
			fmt.Fprintln(a.out, "Could not reach the server. Please try again.")
		case errors.Is(err, auth.ErrSuperseded):
			// Logged out mid-flight; nothing to announce.
		default:
			fmt.Fprintf(a.out, "Login failed: %v\n", err)
		}
		return nil
	}

	snap := a.store.Current()
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", snap.DisplayName, snap.Role)

	if next := a.pendingView; next != "" {
		a.pendingView = ""
		return a.Navigate(ctx, next)
	}
	return nil
}

// Logout clears the session. Safe when already logged out.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.pendingView = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
