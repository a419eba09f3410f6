package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"manassa_backend/internal/feature/chat/domain/entity"
	"manassa_backend/internal/feature/chat/usecase"
)

// chatSessionGorm implements usecase.ChatSessionRepository.
type chatSessionGorm struct {
	db *gorm.DB
}

var _ usecase.ChatSessionRepository = (*chatSessionGorm)(nil)

// NewChatSessionGorm creates a chatSessionGorm bound to the given
// connection.
func NewChatSessionGorm(db *gorm.DB) *chatSessionGorm {
	return &chatSessionGorm{db: db}
}

// FindOpen returns the open session, newest first should more than one
// ever exist.
func (r *chatSessionGorm) FindOpen(ctx context.Context) (*entity.ChatSession, error) {
	var s entity.ChatSession
	if err := r.db.WithContext(ctx).
		Where("is_open = ?", true).
		Order("opened_at DESC").
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNoOpenChat
		}
		return nil, err
	}
	return &s, nil
}

// Create persists a new session.
func (r *chatSessionGorm) Create(ctx context.Context, s *entity.ChatSession) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// Close flips IsOpen to false and stamps who closed it.
func (r *chatSessionGorm) Close(ctx context.Context, id, closedBy string) error {
	res := r.db.WithContext(ctx).Model(&entity.ChatSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_open":   false,
			"closed_by": closedBy,
			"closed_at": gorm.Expr("CURRENT_TIMESTAMP"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrNoOpenChat
	}
	return nil
}

// RecordMessage adds the author to the participant set (idempotent)
// and increments the message count, inside one transaction.
func (r *chatSessionGorm) RecordMessage(ctx context.Context, id, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s entity.ChatSession
		// Lock the row so concurrent sends cannot merge participants
		// from a stale read. The sqlite driver drops the clause, where
		// the single-writer model covers the same ground.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&s).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrNoOpenChat
			}
			return err
		}
		s.Participants = s.Participants.Add(userID)
		// Struct update so the JSON serializer applies to Participants.
		if err := tx.Model(&s).Select("Participants").Updates(&s).Error; err != nil {
			return err
		}
		// The counter is incremented in place rather than rewritten
		// from the value read above.
		return tx.Model(&s).
			UpdateColumn("message_count", gorm.Expr("message_count + ?", 1)).Error
	})
}
