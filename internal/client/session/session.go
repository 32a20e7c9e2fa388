// Package session holds the client-side record of the currently
// authenticated identity: the Session value itself, the closed Role
// enumeration, and the observable Store that owns the one live Session
// per process.
package session

import (
	"errors"
	"fmt"
)

// Role classifies a marketplace user. The set is closed: anything the
// backend or persisted storage hands us that is not one of these values
// is rejected at the boundary.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleUser   Role = "USER"
	RoleFarmer Role = "FARMER"
)

// ErrUnknownRole is returned by ParseRole for values outside the closed set.
var ErrUnknownRole = errors.New("unknown role")

// ParseRole maps a raw role string onto the closed enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser, RoleFarmer:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// Session is a snapshot of the authenticated identity. Credential is an
// opaque bearer token; its absence means "not authenticated" regardless
// of the other fields. Loading is true only while the Store is still
// rehydrating at startup.
type Session struct {
	Credential  string
	SubjectID   string
	DisplayName string
	Role        Role
	Loading     bool
}

// Authenticated reports whether the snapshot carries a credential.
func (s Session) Authenticated() bool {
	return s.Credential != ""
}

// HasRole reports whether the session is authenticated and its role is a
// member of allowed. An empty allowed set means any authenticated role
// suffices.
func (s Session) HasRole(allowed ...Role) bool {
	if !s.Authenticated() {
		return false
	}
	if len(allowed) == 0 {
		return true
	}
	for _, r := range allowed {
		if s.Role == r {
			return true
		}
	}
	return false
}
