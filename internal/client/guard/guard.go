// Package guard gates navigation to application views based on the live
// session snapshot. It only decides; performing the navigation is the
// caller's job.
package guard

import "github.com/carbontrail/carbontrail/internal/client/session"

// Route declares a view's access requirements.
type Route struct {
	Name   string
	Title  string
	Public bool
	// Roles that may enter. Empty means any authenticated role.
	Roles []session.Role
}

// Verdict classifies a navigation attempt.
type Verdict int

const (
	// VerdictLoading: the session is still rehydrating; show a
	// placeholder and decide nothing yet.
	VerdictLoading Verdict = iota
	// VerdictRedirectLogin: not authenticated; go to the login view and
	// come back afterwards.
	VerdictRedirectLogin
	// VerdictDenied: authenticated but lacking the required role.
	VerdictDenied
	// VerdictAllow: render the requested view.
	VerdictAllow
)

// Decision is the guard's answer for one navigation attempt.
type Decision struct {
	Verdict Verdict
	// ReturnTo is the originally requested view, set on RedirectLogin so
	// a successful login can resume it.
	ReturnTo string
}

// Evaluate applies the access rules in their required order: loading
// first (so rehydration never flashes a login redirect), authentication
// before authorization (an anonymous user sees the login redirect, never
// access-denied), role check last.
func Evaluate(route Route, snap session.Session) Decision {
	if route.Public {
		return Decision{Verdict: VerdictAllow}
	}
	if snap.Loading {
		return Decision{Verdict: VerdictLoading}
	}
	if !snap.Authenticated() {
		return Decision{Verdict: VerdictRedirectLogin, ReturnTo: route.Name}
	}
	if len(route.Roles) > 0 && !snap.HasRole(route.Roles...) {
		return Decision{Verdict: VerdictDenied}
	}
	return Decision{Verdict: VerdictAllow}
}
