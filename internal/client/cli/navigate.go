package cli

import (
	"context"
	"fmt"

	"github.com/carbontrail/carbontrail/internal/client/guard"
)

// Navigate routes a view request through the guard and acts on its
// decision. Checks happen in guard order: loading placeholder first,
// then login redirect (remembering where the user wanted to go), then
// access denied, then the view itself.
func (a *App) Navigate(ctx context.Context, name string) error {
	route, ok := findRoute(name)
	if !ok {
		fmt.Fprintf(a.out, "Unknown view: %s\n", name)
		return nil
	}

	switch d := guard.Evaluate(route, a.store.Current()); d.Verdict {
	case guard.VerdictLoading:
		fmt.Fprintln(a.out, "Loading session...")
		return nil

	case guard.VerdictRedirectLogin:
		a.pendingView = d.ReturnTo
		fmt.Fprintf(a.out, "Please log in to open %q.\n", route.Title)
		return a.Login(ctx)

	case guard.VerdictDenied:
		fmt.Fprintf(a.out, "Access denied: %q requires one of the roles %v.\n", route.Title, route.Roles)
		fmt.Fprintln(a.out, "Type 'dashboard' to return to a view you can open.")
		return nil
	}

	if route.Name == "login" {
		return a.Login(ctx)
	}
	return a.render(ctx, route.Name)
}
