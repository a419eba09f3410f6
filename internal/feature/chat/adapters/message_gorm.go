// Package adapters provides the storage and fan-out implementations
// for the chat feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"manassa_backend/internal/feature/chat/domain/entity"
	"manassa_backend/internal/feature/chat/usecase"
)

// messageGorm implements usecase.MessageRepository on the relational
// store.
type messageGorm struct {
	db *gorm.DB
}

var _ usecase.MessageRepository = (*messageGorm)(nil)

// NewMessageGorm creates a messageGorm bound to the given connection.
func NewMessageGorm(db *gorm.DB) *messageGorm {
	return &messageGorm{db: db}
}

// Create persists a new message. The store assigns CreatedAt.
func (r *messageGorm) Create(ctx context.Context, msg *entity.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// FindByID retrieves a message by id.
func (r *messageGorm) FindByID(ctx context.Context, id string) (*entity.Message, error) {
	var msg entity.Message
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&msg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrMessageNotFound
		}
		return nil, err
	}
	return &msg, nil
}

// MarkDeleted soft-deletes one message.
func (r *messageGorm) MarkDeleted(ctx context.Context, id, deletedBy string) error {
	res := r.db.WithContext(ctx).Model(&entity.Message{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_by": deletedBy})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrMessageNotFound
	}
	return nil
}

// MarkAllDeleted soft-deletes every message regardless of prior state.
func (r *messageGorm) MarkAllDeleted(ctx context.Context, deletedBy string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entity.Message{}).
		Where("1 = 1").
		Updates(map[string]interface{}{"is_deleted": true, "deleted_by": deletedBy})
	return res.RowsAffected, res.Error
}

// ListRecent returns the newest limit messages in chronological order.
func (r *messageGorm) ListRecent(ctx context.Context, limit int) ([]*entity.Message, error) {
	var msgs []*entity.Message
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	// Newest window, oldest first for display.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
