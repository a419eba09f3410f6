package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"manassa_backend/internal/feature/chat/domain/entity"
	"manassa_backend/internal/shared/validation"
)

// DefaultHistoryLimit bounds the message snapshots handed to readers
// and subscribers.
const DefaultHistoryLimit = 100

// ModerationUsecase layers the moderation policy over the store: ban
// and open/closed gates in front of every chat write, soft deletes,
// and change fan-out to subscribers.
type ModerationUsecase struct {
	messages MessageRepository
	sessions ChatSessionRepository
	bans     BanRepository
	notifier Notifier
	now      func() time.Time
}

// NewModerationUsecase creates a ModerationUsecase with its
// dependencies injected.
func NewModerationUsecase(messages MessageRepository, sessions ChatSessionRepository, bans BanRepository, notifier Notifier) *ModerationUsecase {
	return &ModerationUsecase{
		messages: messages,
		sessions: sessions,
		bans:     bans,
		notifier: notifier,
		now:      time.Now,
	}
}

// IsChatOpen reports whether an open chat session exists.
func (u *ModerationUsecase) IsChatOpen(ctx context.Context) (bool, error) {
	if _, err := u.sessions.FindOpen(ctx); err != nil {
		if errors.Is(err, ErrNoOpenChat) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// OpenChat creates a new open session. Fails with ErrChatAlreadyOpen
// when one exists.
func (u *ModerationUsecase) OpenChat(ctx context.Context, adminID string) (*entity.ChatSession, error) {
	if _, err := u.sessions.FindOpen(ctx); err == nil {
		return nil, ErrChatAlreadyOpen
	} else if !errors.Is(err, ErrNoOpenChat) {
		return nil, err
	}

	s := &entity.ChatSession{
		ID:           uuid.NewString(),
		IsOpen:       true,
		OpenedBy:     adminID,
		Participants: entity.Participants{},
	}
	if err := u.sessions.Create(ctx, s); err != nil {
		return nil, err
	}
	u.publish(ctx, EventStatus)
	return s, nil
}

// CloseChat flips the one open session closed. Fails with ErrNoOpenChat
// when none exists.
func (u *ModerationUsecase) CloseChat(ctx context.Context, adminID string) error {
	s, err := u.sessions.FindOpen(ctx)
	if err != nil {
		return err
	}
	if err := u.sessions.Close(ctx, s.ID, adminID); err != nil {
		return err
	}
	u.publish(ctx, EventStatus)
	return nil
}

// SendMessage runs the ordered guard chain: length validation, ban
// check, open check, sanitization, then the write. Any guard failure
// short-circuits with no write.
//
// The guards and the write are not one atomic unit: the chat can be
// closed or the author banned between the checks and the insert. The
// window is accepted for this low-stakes surface rather than paid for
// with store transactions.
func (u *ModerationUsecase) SendMessage(ctx context.Context, authorID, name, body, avatarURL string, isAdmin bool) (*entity.Message, error) {
	if !validation.ValidMessage(body) {
		return nil, ErrInvalidMessage
	}
	// Avatars are echoed to every reader, so anything that is not a
	// well-formed http(s) URL is refused outright.
	if avatarURL != "" && !validation.ValidURL(avatarURL) {
		return nil, ErrInvalidMessage
	}

	banned, err := u.IsUserBanned(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if banned {
		return nil, ErrUserBanned
	}

	session, err := u.sessions.FindOpen(ctx)
	if err != nil {
		if errors.Is(err, ErrNoOpenChat) {
			return nil, ErrChatClosed
		}
		return nil, err
	}

	msg := &entity.Message{
		ID:          uuid.NewString(),
		AuthorID:    authorID,
		DisplayName: validation.SanitizeHTML(name),
		Body:        validation.SanitizeHTML(body),
		AvatarURL:   avatarURL,
		IsAdmin:     isAdmin,
	}
	if err := u.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	if err := u.sessions.RecordMessage(ctx, session.ID, authorID); err != nil {
		// The message is already stored; participant bookkeeping is
		// not worth failing the send over.
		slog.Warn("failed to record participant", "session", session.ID, "error", err)
	}

	u.publish(ctx, EventMessages)
	return msg, nil
}

// DeleteMessage soft-deletes one message. The content stays in the
// store; readers render it redacted.
func (u *ModerationUsecase) DeleteMessage(ctx context.Context, id, adminID string) error {
	if _, err := u.messages.FindByID(ctx, id); err != nil {
		return err
	}
	if err := u.messages.MarkDeleted(ctx, id, adminID); err != nil {
		return err
	}
	u.publish(ctx, EventMessages)
	return nil
}

// ClearAllMessages soft-deletes every message regardless of prior
// state. Bulk moderation action.
func (u *ModerationUsecase) ClearAllMessages(ctx context.Context, adminID string) (int64, error) {
	n, err := u.messages.MarkAllDeleted(ctx, adminID)
	if err != nil {
		return 0, err
	}
	u.publish(ctx, EventMessages)
	return n, nil
}

// Messages returns the recent message history in chronological order.
func (u *ModerationUsecase) Messages(ctx context.Context) ([]*entity.Message, error) {
	return u.messages.ListRecent(ctx, DefaultHistoryLimit)
}

// BanUser creates an active ban. A zero duration means permanent.
func (u *ModerationUsecase) BanUser(ctx context.Context, userID, adminID, reason string, duration time.Duration) (*entity.Ban, error) {
	// IsUserBanned also lazily deactivates a lapsed ban, so a fresh
	// ban can replace it in one call.
	banned, err := u.IsUserBanned(ctx, userID)
	if err != nil {
		return nil, err
	}
	if banned {
		return nil, ErrAlreadyBanned
	}

	b := &entity.Ban{
		ID:       uuid.NewString(),
		UserID:   userID,
		BannedBy: adminID,
		Reason:   reason,
		IsActive: true,
	}
	if duration > 0 {
		expires := u.now().Add(duration)
		b.ExpiresAt = &expires
	}
	if err := u.bans.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// UnbanUser deactivates the user's active ban, or fails with
// ErrBanNotFound.
func (u *ModerationUsecase) UnbanUser(ctx context.Context, userID string) error {
	b, err := u.activeBan(ctx, userID)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrBanNotFound
	}
	return u.bans.Deactivate(ctx, b)
}

// IsUserBanned reports whether userID has an active, unexpired ban. A
// ban whose expiry has passed is flipped inactive on the spot, the
// same lazy-expiry pattern the session store uses.
func (u *ModerationUsecase) IsUserBanned(ctx context.Context, userID string) (bool, error) {
	b, err := u.activeBan(ctx, userID)
	if err != nil {
		return false, err
	}
	if b == nil {
		return false, nil
	}
	if b.Expired(u.now()) {
		if err := u.bans.Deactivate(ctx, b); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

// BannedUsers returns all active bans, most recent first. A ban whose
// expiry has lapsed while its stored flag is still stale true is
// flipped inactive here and left out of the list.
func (u *ModerationUsecase) BannedUsers(ctx context.Context) ([]*entity.Ban, error) {
	bans, err := u.bans.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	live := bans[:0]
	for _, b := range bans {
		if b.Expired(u.now()) {
			if err := u.bans.Deactivate(ctx, b); err != nil {
				return nil, err
			}
			continue
		}
		live = append(live, b)
	}
	return live, nil
}

// activeBan fetches the active ban, mapping ErrBanNotFound to nil.
func (u *ModerationUsecase) activeBan(ctx context.Context, userID string) (*entity.Ban, error) {
	b, err := u.bans.FindActive(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrBanNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

// publish fans an event out to subscribers. Failures are logged, never
// propagated: the underlying write has already happened.
func (u *ModerationUsecase) publish(ctx context.Context, ev Event) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Publish(ctx, ev); err != nil {
		slog.Warn("failed to publish chat event", "event", ev, "error", err)
	}
}

// SetClock replaces the time source. Test hook.
func (u *ModerationUsecase) SetClock(now func() time.Time) {
	u.now = now
}
