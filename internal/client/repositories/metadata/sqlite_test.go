package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:metadata_test?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_GetMissingKey(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	v, err := repo.Get(context.Background(), "credential")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteRepository_SetGetDelete(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "credential", []byte("tok-1")))

	v, err := repo.Get(ctx, "credential")
	require.NoError(t, err)
	require.Equal(t, []byte("tok-1"), v)

	// upsert replaces
	require.NoError(t, repo.Set(ctx, "credential", []byte("tok-2")))
	v, err = repo.Get(ctx, "credential")
	require.NoError(t, err)
	require.Equal(t, []byte("tok-2"), v)

	require.NoError(t, repo.Delete(ctx, "credential"))
	v, err = repo.Get(ctx, "credential")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteRepository_DeleteMissingKeyIsNoop(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	require.NoError(t, repo.Delete(context.Background(), "role"))
}
