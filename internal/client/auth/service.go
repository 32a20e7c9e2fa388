// Package auth orchestrates the login round trip and the reactive
// teardown on authorization failure. It is the only package that calls
// session.Store.Login and Logout.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/carbontrail/carbontrail/internal/client/api"
	"github.com/carbontrail/carbontrail/internal/client/session"
	"github.com/carbontrail/carbontrail/internal/logging"
)

var (
	// ErrInvalidCredentials carries the server's rejection message.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSuperseded marks a login whose result arrived after a logout and
	// was discarded.
	ErrSuperseded = errors.New("login superseded by logout")
)

// Backend is the slice of the API client the auth service needs.
type Backend interface {
	Login(ctx context.Context, email, password string) (api.LoginResult, error)
}

// Service drives the auth state machine against a Backend and applies
// the resulting transitions to the session Store.
type Service struct {
	mu    sync.Mutex
	state State

	// seq increments on every Logout (user or forced). A login response
	// carrying an older seq is stale and must not resurrect the session.
	seq uint64

	store    *session.Store
	backend  Backend
	log      logging.Logger
	redirect func() // sends the UI to the login view
}

// NewService wires the machine to its collaborators. redirect is invoked
// exactly once per forced logout; it may be nil.
func NewService(store *session.Store, backend Backend, redirect func(), log logging.Logger) *Service {
	return &Service{
		state:    StateAnonymous,
		store:    store,
		backend:  backend,
		log:      log,
		redirect: redirect,
	}
}

// Initialize rehydrates the store and positions the machine accordingly.
func (s *Service) Initialize(ctx context.Context) State {
	authenticated := s.store.Initialize(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if authenticated {
		s.state = StateAuthenticated
	} else {
		s.state = StateAnonymous
	}
	return s.state
}

// State returns the machine's current position.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Login runs the submit-credentials transition. On success the session
// store is populated atomically and the machine lands in Authenticated.
// Failure modes:
//   - server rejection (4xx): Error state, ErrInvalidCredentials with the
//     server's message; the session stays cleared.
//   - unreachable server or malformed body: back to Anonymous, error
//     surfaced; the session is never half-populated.
//   - a logout raced the round trip: ErrSuperseded, session stays empty.
func (s *Service) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	startSeq := s.seq
	s.state = StateAuthenticating
	s.mu.Unlock()

	res, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return s.failLogin(ctx, err)
	}

	role, err := session.ParseRole(res.Role)
	if err != nil {
		return s.failLogin(ctx, fmt.Errorf("%w: %v", api.ErrMalformedResponse, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seq != startSeq {
		// Logged out while the request was in flight; drop the result.
		s.state = StateAnonymous
		s.log.Warn(ctx, "discarding stale login response")
		return ErrSuperseded
	}

	id := session.Identity{
		Credential:  res.Credential,
		SubjectID:   res.SubjectID,
		DisplayName: res.DisplayName,
		Role:        res.Role,
	}
	if err := s.store.Login(ctx, id, role); err != nil {
		s.state = StateAnonymous
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.state = StateAuthenticated
	s.log.Info(ctx, "logged in", "subject", res.SubjectID, "role", res.Role)
	return nil
}

// failLogin maps a round-trip failure onto the machine. Server-side
// rejections park in Error (retryable by resubmission); everything else
// returns to Anonymous. Neither touches the session store, which is
// already empty.
func (s *Service) failLogin(ctx context.Context, cause error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var apiErr *api.APIError
	if errors.As(cause, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		s.state = StateError
		if apiErr.Message != "" {
			return fmt.Errorf("%w: %s", ErrInvalidCredentials, apiErr.Message)
		}
		return ErrInvalidCredentials
	}

	s.state = StateAnonymous
	s.log.Warn(ctx, "login attempt failed", "error", cause)
	return cause
}

// Logout clears the session and returns the machine to Anonymous. Safe
// to call in any state; an in-flight login is invalidated via seq.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	s.seq++
	s.state = StateAnonymous
	s.mu.Unlock()

	s.store.Logout(ctx)
}

// HandleUnauthorized is the forced-logout path, called by the HTTP
// transport for every 401 on an authenticated request. However many
// concurrent requests fail, the session is cleared and the redirect
// fires once; later calls find the machine already Anonymous.
func (s *Service) HandleUnauthorized() {
	s.mu.Lock()
	if s.state != StateAuthenticated {
		s.mu.Unlock()
		return
	}
	s.seq++
	s.state = StateAnonymous
	s.mu.Unlock()

	ctx := context.Background()
	s.store.Logout(ctx)
	s.log.Warn(ctx, "session rejected by server, logging out")
	if s.redirect != nil {
		s.redirect()
	}
}
