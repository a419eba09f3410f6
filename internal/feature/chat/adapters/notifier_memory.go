package adapters

import (
	"context"
	"sync"

	"manassa_backend/internal/feature/chat/usecase"
)

// MemoryNotifier implements usecase.Notifier in process. It is the
// fallback when Redis is not configured; fan-out then only reaches
// subscribers in the same process.
type MemoryNotifier struct {
	mu   sync.Mutex
	subs map[chan usecase.Event]struct{}
}

var _ usecase.Notifier = (*MemoryNotifier)(nil)

// NewMemoryNotifier creates an empty MemoryNotifier.
func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{subs: make(map[chan usecase.Event]struct{})}
}

// Publish delivers the event to every live subscriber. A subscriber
// that has fallen 16 events behind is skipped rather than blocked on.
func (n *MemoryNotifier) Publish(_ context.Context, event usecase.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	for ch := range n.subs {
		select {
		case ch <- event:
		default:
		}
	}
	return nil
}

// Subscribe registers a new subscriber. Cancel unregisters it and
// closes the channel; calling it more than once is safe.
func (n *MemoryNotifier) Subscribe(_ context.Context) (<-chan usecase.Event, func(), error) {
	ch := make(chan usecase.Event, 16)
	n.mu.Lock()
	n.subs[ch] = struct{}{}
	n.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, ch)
			n.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel, nil
}
