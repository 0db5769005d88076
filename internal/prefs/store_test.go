package prefs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "nested", "prefs.db"))
	require.NoError(t, err, "failed to open sqlite store")
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": newSQLite(t),
	}
}

func TestStore_Contract(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := store.Get(ctx, "display", "theme")
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Set(ctx, "display", "theme", "dark"))
			require.NoError(t, store.Set(ctx, "display", "font", "mono"))
			require.NoError(t, store.Set(ctx, "other", "theme", "light"))

			v, err := store.Get(ctx, "display", "theme")
			require.NoError(t, err)
			assert.Equal(t, "dark", v)

			require.NoError(t, store.Set(ctx, "display", "theme", "light"), "set overwrites")
			v, _ = store.Get(ctx, "display", "theme")
			assert.Equal(t, "light", v)

			list, err := store.List(ctx, "display")
			require.NoError(t, err)
			assert.Equal(t, []Preference{
				{Category: "display", Name: "font", Value: "mono"},
				{Category: "display", Name: "theme", Value: "light"},
			}, list)

			require.NoError(t, store.Delete(ctx, "display", "theme"))
			_, err = store.Get(ctx, "display", "theme")
			assert.ErrorIs(t, err, ErrNotFound)
			require.NoError(t, store.Delete(ctx, "display", "theme"), "deleting a missing key is fine")
		})
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "display", "theme", "dark"))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(ctx, path)
	require.NoError(t, err, "reopening re-runs migrations without error")
	defer s.Close()

	v, err := s.Get(ctx, "display", "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)
	assert.Equal(t, path, s.Path())
}

func TestMigrate_RecordsVersion(t *testing.T) {
	ctx := context.Background()
	s := newSQLite(t)

	v, err := SchemaVersion(ctx, s.db)
	require.NoError(t, err)
	assert.Equal(t, uint(2), v)

	require.NoError(t, Migrate(ctx, s.db), "migrating twice is a no-op")
	var count int
	require.NoError(t, s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&count))
	assert.Equal(t, 2, count)
}
