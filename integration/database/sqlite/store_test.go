package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrauElster/goutil/integration/database/sqlite"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	db, err := sqlite.Connect(context.Background(), sqlite.Config{
		Path:        ":memory:",
		BusyTimeout: time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return sqlite.NewStore(db)
}

func TestConnect(t *testing.T) {
	t.Parallel()

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		_, err := sqlite.Connect(context.Background(), sqlite.Config{})
		assert.ErrorIs(t, err, sqlite.ErrEmptyPath)
	})

	t.Run("creates file and parent directories", func(t *testing.T) {
		t.Parallel()

		path := t.TempDir() + "/nested/app.db"
		db, err := sqlite.Connect(context.Background(), sqlite.Config{Path: path})
		require.NoError(t, err)
		defer db.Close()

		require.NoError(t, db.Ping())
	})
}

func TestStoreCreateTable(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	ctx := context.Background()

	err := store.CreateTable(ctx, "users", []string{"id INTEGER PRIMARY KEY", "name TEXT"})
	require.NoError(t, err)

	// Idempotent thanks to IF NOT EXISTS.
	require.NoError(t, store.CreateTable(ctx, "users", []string{"id INTEGER PRIMARY KEY"}))

	assert.ErrorIs(t, store.CreateTable(ctx, "empty", nil), sqlite.ErrNoColumns)
}

func TestStoreInsertAndSelect(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateTable(ctx, "users", []string{
		"id INTEGER PRIMARY KEY",
		"name TEXT",
		"age INTEGER",
	}))
	require.NoError(t, store.Insert(ctx, "users", []map[string]any{
		{"name": "alice", "age": 30},
		{"name": "bob", "age": 25},
	}))

	t.Run("filtered", func(t *testing.T) {
		rows, err := store.Select(ctx, "users", map[string]any{"name": "alice"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "alice", rows[0]["name"])
		assert.EqualValues(t, 30, rows[0]["age"])
	})

	t.Run("unfiltered returns all", func(t *testing.T) {
		rows, err := store.Select(ctx, "users", nil)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("no match", func(t *testing.T) {
		rows, err := store.Select(ctx, "users", map[string]any{"name": "nobody"})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("empty insert", func(t *testing.T) {
		assert.ErrorIs(t, store.Insert(ctx, "users", nil), sqlite.ErrNoRows)
	})
}

func TestStoreUpdate(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateTable(ctx, "users", []string{"name TEXT", "age INTEGER"}))
	require.NoError(t, store.Insert(ctx, "users", []map[string]any{
		{"name": "alice", "age": 30},
		{"name": "bob", "age": 25},
	}))

	affected, err := store.Update(ctx, "users",
		map[string]any{"age": 31},
		map[string]any{"name": "alice"},
	)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	rows, err := store.Select(ctx, "users", map[string]any{"name": "alice"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 31, rows[0]["age"])

	_, err = store.Update(ctx, "users", nil, nil)
	assert.ErrorIs(t, err, sqlite.ErrNoColumns)
}

func TestStoreDelete(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateTable(ctx, "users", []string{"name TEXT"}))
	require.NoError(t, store.Insert(ctx, "users", []map[string]any{
		{"name": "alice"}, {"name": "bob"}, {"name": "carol"},
	}))

	deleted, err := store.Delete(ctx, "users", map[string]any{"name": "bob"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	deleted, err = store.Delete(ctx, "users", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)
}
