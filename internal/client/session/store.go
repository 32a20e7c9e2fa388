package session

import (
	"context"
	"sync"

	"github.com/carbontrail/carbontrail/internal/logging"
)

// Observer receives the new Session snapshot after every Store mutation.
// Each notification carries the snapshot one mutation produced, so it is
// never partially updated. Delivery happens after the mutation's lock is
// released; observers may call back into the Store.
type Observer func(Session)

// Store is the single source of truth for the authenticated identity.
// All mutations go through Login/Logout (called by the auth service);
// everyone else reads snapshots via Current or subscribes.
type Store struct {
	mu          sync.Mutex
	current     Session
	observers   []Observer
	storage     Storage
	initialized bool
	log         logging.Logger
}

// NewStore returns a Store in the loading state, backed by storage.
// Initialize must run before guard decisions are trusted.
func NewStore(storage Storage, log logging.Logger) *Store {
	return &Store{
		current: Session{Loading: true},
		storage: storage,
		log:     log,
	}
}

// Initialize rehydrates the Session from storage. A complete stored
// identity with a recognized role is trusted as-is, without a server
// round-trip. Anything else — nothing stored, a partial record, an
// unknown role, or a storage read error — leaves the Store
// unauthenticated and clears the leftovers. Initialize never fails the
// caller; it reports whether the Store came up authenticated. Repeat
// calls are no-ops.
func (s *Store) Initialize(ctx context.Context) bool {
	s.mu.Lock()

	if s.initialized {
		authenticated := s.current.Authenticated()
		s.mu.Unlock()
		return authenticated
	}
	s.initialized = true

	id, ok, err := s.storage.Load(ctx)
	if err != nil {
		s.log.Warn(ctx, "session rehydration failed, starting unauthenticated", "error", err)
		s.resetAndNotify(ctx)
		return false
	}
	if !ok {
		s.resetAndNotify(ctx)
		return false
	}

	role, err := ParseRole(id.Role)
	if err != nil {
		s.log.Warn(ctx, "stored session has unrecognized role, discarding", "error", err)
		s.resetAndNotify(ctx)
		return false
	}

	s.current = Session{
		Credential:  id.Credential,
		SubjectID:   id.SubjectID,
		DisplayName: id.DisplayName,
		Role:        role,
	}
	s.notifyAndUnlock()
	return true
}

// Login atomically replaces the Session with the given identity and
// persists it. Observers see either the previous snapshot or the fully
// populated new one, never a mix.
func (s *Store) Login(ctx context.Context, id Identity, role Role) error {
	s.mu.Lock()

	if err := s.storage.Save(ctx, id); err != nil {
		s.mu.Unlock()
		return err
	}
	s.current = Session{
		Credential:  id.Credential,
		SubjectID:   id.SubjectID,
		DisplayName: id.DisplayName,
		Role:        role,
	}
	s.notifyAndUnlock()
	return nil
}

// Logout clears the Session and its persisted entries. Safe to call when
// already logged out.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.resetAndNotify(ctx)
}

// Current returns a snapshot of the Session.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// HasRole reports whether the live Session is authenticated with one of
// the allowed roles (any role if allowed is empty).
func (s *Store) HasRole(allowed ...Role) bool {
	return s.Current().HasRole(allowed...)
}

// Subscribe registers an observer and immediately delivers the current
// snapshot to it.
func (s *Store) Subscribe(fn Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	snap := s.current
	s.mu.Unlock()
	fn(snap)
}

// resetAndNotify is called with the lock held and releases it.
func (s *Store) resetAndNotify(ctx context.Context) {
	if err := s.storage.Clear(ctx); err != nil {
		s.log.Warn(ctx, "failed to clear persisted session", "error", err)
	}
	s.current = Session{}
	s.notifyAndUnlock()
}

// notifyAndUnlock snapshots the session and the observer list, releases
// the lock, then delivers. Observers never run under the Store mutex.
func (s *Store) notifyAndUnlock() {
	snap := s.current
	obs := s.observers
	s.mu.Unlock()
	for _, fn := range obs {
		fn(snap)
	}
}
