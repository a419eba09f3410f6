package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manassa_backend/internal/feature/chat/usecase"
)

// setupTestRedis spins up an in-process Redis server for testing.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func waitEvent(t *testing.T, events <-chan usecase.Event) usecase.Event {
	t.Helper()
	select {
	case ev, ok := <-events:
		require.True(t, ok, "event channel closed unexpectedly")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return ""
	}
}

func assertEventsClosed(t *testing.T, events <-chan usecase.Event) {
	t.Helper()
	select {
	case _, ok := <-events:
		assert.False(t, ok, "expected channel to be closed")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestRedisNotifier_PublishReachesSubscribers(t *testing.T) {
	rdb := setupTestRedis(t)
	n := NewRedisNotifier(rdb, "chat:events")
	ctx := context.Background()

	events, cancel, err := n.Subscribe(ctx)
	require.NoError(t, err)
	defer cancel()

	require.NoError(t, n.Publish(ctx, usecase.EventMessages))
	assert.Equal(t, usecase.EventMessages, waitEvent(t, events))

	require.NoError(t, n.Publish(ctx, usecase.EventStatus))
	assert.Equal(t, usecase.EventStatus, waitEvent(t, events))
}

func TestRedisNotifier_FanOut(t *testing.T) {
	rdb := setupTestRedis(t)
	n := NewRedisNotifier(rdb, "chat:events")
	ctx := context.Background()

	first, cancelFirst, err := n.Subscribe(ctx)
	require.NoError(t, err)
	defer cancelFirst()

	second, cancelSecond, err := n.Subscribe(ctx)
	require.NoError(t, err)
	defer cancelSecond()

	require.NoError(t, n.Publish(ctx, usecase.EventStatus))
	assert.Equal(t, usecase.EventStatus, waitEvent(t, first))
	assert.Equal(t, usecase.EventStatus, waitEvent(t, second))
}

func TestRedisNotifier_CancelClosesChannel(t *testing.T) {
	rdb := setupTestRedis(t)
	n := NewRedisNotifier(rdb, "chat:events")

	events, cancel, err := n.Subscribe(context.Background())
	require.NoError(t, err)

	cancel()
	assertEventsClosed(t, events)

	// Calling cancel again must be harmless.
	cancel()
}

func TestMemoryNotifier_PublishReachesSubscribers(t *testing.T) {
	n := NewMemoryNotifier()
	ctx := context.Background()

	events, cancel, err := n.Subscribe(ctx)
	require.NoError(t, err)
	defer cancel()

	require.NoError(t, n.Publish(ctx, usecase.EventMessages))
	assert.Equal(t, usecase.EventMessages, waitEvent(t, events))
}

func TestMemoryNotifier_CancelStopsDelivery(t *testing.T) {
	n := NewMemoryNotifier()
	ctx := context.Background()

	events, cancel, err := n.Subscribe(ctx)
	require.NoError(t, err)

	cancel()
	assertEventsClosed(t, events)
	cancel()

	// Publishing after every subscriber is gone must not fail.
	assert.NoError(t, n.Publish(ctx, usecase.EventStatus))
}
