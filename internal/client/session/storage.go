package session

import "context"

// Identity is the persisted slice of a Session: everything except the
// transient Loading flag. The four fields are written together and
// removed together; a load that finds only some of them is treated as
// finding none.
type Identity struct {
	Credential  string
	SubjectID   string
	DisplayName string
	Role        string
}

// Complete reports whether every persisted field is present. Role is kept
// as a raw string here; it is parsed against the closed enum by the Store.
func (i Identity) Complete() bool {
	return i.Credential != "" && i.SubjectID != "" && i.DisplayName != "" && i.Role != ""
}

// Storage persists the identity between process runs. Implementations
// must make Save all-or-nothing with respect to Load: a reader never
// observes a subset of the four fields from a single Save.
type Storage interface {
	// Load returns the stored identity, ok=false when nothing (or only a
	// partial record) is stored.
	Load(ctx context.Context) (Identity, bool, error)
	// Save stores all four fields, replacing any previous identity.
	Save(ctx context.Context, id Identity) error
	// Clear removes the stored identity. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
