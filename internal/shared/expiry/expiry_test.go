package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordGet(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("live record returns value", func(t *testing.T) {
		r := Record[string]{Value: "subject", ExpiresAt: now.Add(time.Hour)}
		got, ok := r.Get(now)
		assert.True(t, ok)
		assert.Equal(t, "subject", got)
	})

	t.Run("expired record returns zero value", func(t *testing.T) {
		r := Record[string]{Value: "subject", ExpiresAt: now.Add(-time.Second)}
		got, ok := r.Get(now)
		assert.False(t, ok)
		assert.Empty(t, got)
	})

	t.Run("zero expiry never expires", func(t *testing.T) {
		r := Record[int]{Value: 7}
		got, ok := r.Get(now.Add(100 * 365 * 24 * time.Hour))
		assert.True(t, ok)
		assert.Equal(t, 7, got)
	})
}

func TestPast(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Minute)
	after := now.Add(time.Minute)

	assert.True(t, Past(&before, now))
	assert.False(t, Past(&after, now))
	assert.False(t, Past(nil, now), "nil expiry means permanent")
}
