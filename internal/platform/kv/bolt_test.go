package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) Store {
	t.Helper()

	store, err := NewBoltStore(t.TempDir(), "sessions")
	require.NoError(t, err, "failed to open bolt store")
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestBoltStore_PutGet(t *testing.T) {
	store := setupStore(t)

	require.NoError(t, store.Put("sessions", "user", []byte(`{"a":1}`)))

	got, err := store.Get("sessions", "user")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), got)
}

func TestBoltStore_GetAbsent(t *testing.T) {
	store := setupStore(t)

	got, err := store.Get("sessions", "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Unknown bucket behaves like an absent key.
	got, err = store.Get("unknown", "user")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBoltStore_Overwrite(t *testing.T) {
	store := setupStore(t)

	require.NoError(t, store.Put("sessions", "user", []byte("old")))
	require.NoError(t, store.Put("sessions", "user", []byte("new")))

	got, err := store.Get("sessions", "user")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

func TestBoltStore_Delete(t *testing.T) {
	store := setupStore(t)

	require.NoError(t, store.Put("sessions", "user", []byte("x")))
	require.NoError(t, store.Delete("sessions", "user"))

	got, err := store.Get("sessions", "user")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is not an error.
	assert.NoError(t, store.Delete("sessions", "user"))
}
