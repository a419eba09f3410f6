package adapters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manassa_backend/internal/feature/auth/usecase"
	"manassa_backend/internal/platform/kv"
)

func setupSessionStore(t *testing.T) (*sessionBolt, *time.Time) {
	t.Helper()

	store, err := kv.NewBoltStore(t.TempDir(), SessionBucket)
	require.NoError(t, err, "failed to open bolt store")
	t.Cleanup(func() { _ = store.Close() })

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := NewSessionBolt(store, DefaultSessionTTL)
	s.SetClock(func() time.Time { return now })
	return s, &now
}

func TestSessionBolt_SetGet(t *testing.T) {
	s, _ := setupSessionStore(t)

	require.NoError(t, s.Set(usecase.SlotUser, "acct-1", []byte(`{"name":"Ahmed"}`)))

	sess, err := s.Get(usecase.SlotUser)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "acct-1", sess.SubjectID)
	assert.JSONEq(t, `{"name":"Ahmed"}`, string(sess.Data))
	assert.Equal(t, sess.IssuedAt.Add(DefaultSessionTTL), sess.ExpiresAt)
}

func TestSessionBolt_SlotsAreIndependent(t *testing.T) {
	s, _ := setupSessionStore(t)

	require.NoError(t, s.Set(usecase.SlotUser, "acct-1", nil))
	require.NoError(t, s.Set(usecase.SlotAdmin, "acct-admin", nil))

	user, err := s.Get(usecase.SlotUser)
	require.NoError(t, err)
	admin, err := s.Get(usecase.SlotAdmin)
	require.NoError(t, err)

	assert.Equal(t, "acct-1", user.SubjectID)
	assert.Equal(t, "acct-admin", admin.SubjectID)

	require.NoError(t, s.Clear(usecase.SlotUser))
	user, err = s.Get(usecase.SlotUser)
	require.NoError(t, err)
	assert.Nil(t, user, "cleared slot reads as absent")

	admin, err = s.Get(usecase.SlotAdmin)
	require.NoError(t, err)
	assert.NotNil(t, admin, "admin slot untouched by user clear")
}

func TestSessionBolt_LazyExpiry(t *testing.T) {
	s, now := setupSessionStore(t)

	require.NoError(t, s.Set(usecase.SlotUser, "acct-1", nil))

	// Still valid one minute before expiry.
	*now = now.Add(DefaultSessionTTL - time.Minute)
	sess, err := s.Get(usecase.SlotUser)
	require.NoError(t, err)
	assert.NotNil(t, sess)

	// Past expiry: read returns nothing and clears the slot.
	*now = now.Add(2 * time.Minute)
	sess, err = s.Get(usecase.SlotUser)
	require.NoError(t, err)
	assert.Nil(t, sess)

	// The slot stays empty even if the clock goes backwards, because
	// the record was deleted on the expired read.
	*now = now.Add(-time.Hour)
	sess, err = s.Get(usecase.SlotUser)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestSessionBolt_SetOverwritesSlot(t *testing.T) {
	s, _ := setupSessionStore(t)

	require.NoError(t, s.Set(usecase.SlotUser, "acct-1", nil))
	require.NoError(t, s.Set(usecase.SlotUser, "acct-2", nil))

	sess, err := s.Get(usecase.SlotUser)
	require.NoError(t, err)
	assert.Equal(t, "acct-2", sess.SubjectID)
}
