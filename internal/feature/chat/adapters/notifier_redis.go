package adapters

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"

	"manassa_backend/internal/feature/chat/usecase"
)

// RedisNotifier implements usecase.Notifier on Redis Pub/Sub, so every
// server instance sees changes made by any other.
type RedisNotifier struct {
	rdb     *redis.Client
	channel string
}

var _ usecase.Notifier = (*RedisNotifier)(nil)

// NewRedisNotifier creates a RedisNotifier publishing on channel.
func NewRedisNotifier(rdb *redis.Client, channel string) *RedisNotifier {
	if channel == "" {
		channel = "chat:events"
	}
	return &RedisNotifier{rdb: rdb, channel: channel}
}

// Publish broadcasts the event to every subscriber on the channel.
func (n *RedisNotifier) Publish(ctx context.Context, event usecase.Event) error {
	return n.rdb.Publish(ctx, n.channel, string(event)).Err()
}

// Subscribe opens a Pub/Sub subscription. The returned cancel closes
// the subscription and, through it, the event channel; calling it more
// than once is safe.
func (n *RedisNotifier) Subscribe(ctx context.Context) (<-chan usecase.Event, func(), error) {
	ps := n.rdb.Subscribe(ctx, n.channel)
	// Force the subscription to be established before returning, so
	// no event published after Subscribe returns is missed.
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, nil, err
	}

	out := make(chan usecase.Event, 16)
	go func() {
		defer close(out)
		for msg := range ps.Channel() {
			out <- usecase.Event(msg.Payload)
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() { _ = ps.Close() })
	}
	return out, cancel, nil
}
