package session

import (
	"context"
	"database/sql"

	"github.com/carbontrail/carbontrail/internal/client/repositories/metadata"
	"github.com/carbontrail/carbontrail/internal/dbx"
)

// Keys under which the identity is persisted in the metadata table.
const (
	keyCredential  = "session.credential"
	keySubjectID   = "session.subject_id"
	keyDisplayName = "session.display_name"
	keyRole        = "session.role"
)

var identityKeys = []string{keyCredential, keySubjectID, keyDisplayName, keyRole}

// SQLiteStorage persists the identity in the client's local database.
// Save and Clear run inside a single transaction so the four entries are
// always written and removed together.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(db *sql.DB) *SQLiteStorage {
	return &SQLiteStorage{db: db}
}

func (s *SQLiteStorage) Load(ctx context.Context) (Identity, bool, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	var id Identity
	for key, dst := range map[string]*string{
		keyCredential:  &id.Credential,
		keySubjectID:   &id.SubjectID,
		keyDisplayName: &id.DisplayName,
		keyRole:        &id.Role,
	} {
		v, err := repo.Get(ctx, key)
		if err != nil {
			return Identity{}, false, err
		}
		*dst = string(v)
	}

	if !id.Complete() {
		// Partial records count as absent; the caller clears them.
		return Identity{}, false, nil
	}
	return id, true, nil
}

func (s *SQLiteStorage) Save(ctx context.Context, id Identity) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for key, v := range map[string]string{
			keyCredential:  id.Credential,
			keySubjectID:   id.SubjectID,
			keyDisplayName: id.DisplayName,
			keyRole:        id.Role,
		} {
			if err := repo.Set(ctx, key, []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStorage) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for _, key := range identityKeys {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}
