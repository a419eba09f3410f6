package usecase

import (
	"context"
	"log/slog"

	"manassa_backend/internal/feature/chat/domain/entity"
)

// SubscribeMessages streams a fresh snapshot of the message list: one
// immediately, then one on every change, until cancel is called. The
// returned channel closes after cancel; the subscription holds no
// resources past that point. Slow consumers see the latest snapshot,
// not every intermediate one.
func (u *ModerationUsecase) SubscribeMessages(ctx context.Context) (<-chan []*entity.Message, func(), error) {
	return subscribe(ctx, u.notifier, EventMessages, func(ctx context.Context) ([]*entity.Message, error) {
		return u.Messages(ctx)
	})
}

// SubscribeStatus streams the open/closed status: the current value
// immediately, then again on every change, until cancel is called.
func (u *ModerationUsecase) SubscribeStatus(ctx context.Context) (<-chan bool, func(), error) {
	return subscribe(ctx, u.notifier, EventStatus, func(ctx context.Context) (bool, error) {
		return u.IsChatOpen(ctx)
	})
}

// subscribe bridges the notifier's event stream to a snapshot stream:
// on every matching event the current state is re-read and pushed with
// latest-wins semantics on a buffer of one.
func subscribe[T any](ctx context.Context, notifier Notifier, want Event, load func(context.Context) (T, error)) (<-chan T, func(), error) {
	events, stop, err := notifier.Subscribe(ctx)
	if err != nil {
		return nil, nil, err
	}

	out := make(chan T, 1)
	push := func() {
		snap, err := load(ctx)
		if err != nil {
			slog.Warn("failed to load subscription snapshot", "event", want, "error", err)
			return
		}
		// Latest wins: drop the stale pending snapshot if the consumer
		// has not drained it yet.
		select {
		case out <- snap:
		default:
			select {
			case <-out:
			default:
			}
			select {
			case out <- snap:
			default:
			}
		}
	}

	go func() {
		defer close(out)
		push()
		for ev := range events {
			if ev == want {
				push()
			}
		}
	}()

	return out, stop, nil
}
