package usecase

import (
	"context"

	"manassa_backend/internal/feature/chat/domain/entity"
)

// MessageRepository abstracts message storage. Interfaces are defined
// by the consumer (usecase), not the provider (adapters).
type MessageRepository interface {
	// Create persists a new message. CreatedAt is assigned by the
	// store.
	Create(ctx context.Context, msg *entity.Message) error

	// FindByID retrieves a message, or ErrMessageNotFound.
	FindByID(ctx context.Context, id string) (*entity.Message, error)

	// MarkDeleted soft-deletes one message.
	MarkDeleted(ctx context.Context, id, deletedBy string) error

	// MarkAllDeleted soft-deletes every message regardless of prior
	// state and returns the number touched.
	MarkAllDeleted(ctx context.Context, deletedBy string) (int64, error)

	// ListRecent returns up to limit messages in chronological order,
	// newest window first when trimming.
	ListRecent(ctx context.Context, limit int) ([]*entity.Message, error)
}

// ChatSessionRepository abstracts the open/closed chat state.
type ChatSessionRepository interface {
	// FindOpen returns the open session, or ErrNoOpenChat.
	FindOpen(ctx context.Context) (*entity.ChatSession, error)

	// Create persists a new session.
	Create(ctx context.Context, s *entity.ChatSession) error

	// Close flips IsOpen to false on the given session.
	Close(ctx context.Context, id, closedBy string) error

	// RecordMessage adds the author to the participant set (idempotent)
	// and increments the session's message count.
	RecordMessage(ctx context.Context, id, userID string) error
}

// BanRepository abstracts ban storage.
type BanRepository interface {
	// FindActive returns the most recent active ban for userID, or
	// ErrBanNotFound.
	FindActive(ctx context.Context, userID string) (*entity.Ban, error)

	// Create persists a new ban record.
	Create(ctx context.Context, b *entity.Ban) error

	// Deactivate flips IsActive to false on the given ban. The full
	// record is passed so decorators can invalidate by user.
	Deactivate(ctx context.Context, b *entity.Ban) error

	// ListActive returns all active bans, most recent first.
	ListActive(ctx context.Context) ([]*entity.Ban, error)
}

// Event names a class of chat change.
type Event string

const (
	// EventMessages signals the message list changed.
	EventMessages Event = "messages"

	// EventStatus signals the open/closed status changed.
	EventStatus Event = "status"
)

// Notifier fans change events out to live subscribers. Publish is
// best-effort: a delivery failure never fails the write that caused it.
type Notifier interface {
	Publish(ctx context.Context, event Event) error

	// Subscribe returns a stream of events and a cancel function. The
	// stream closes after cancel; implementations must not leak
	// resources once cancelled.
	Subscribe(ctx context.Context) (<-chan Event, func(), error)
}
