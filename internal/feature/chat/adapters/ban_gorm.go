package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"manassa_backend/internal/feature/chat/domain/entity"
	"manassa_backend/internal/feature/chat/usecase"
)

// banGorm implements usecase.BanRepository. Records are only ever
// created and flagged, never deleted.
type banGorm struct {
	db *gorm.DB
}

var _ usecase.BanRepository = (*banGorm)(nil)

// NewBanGorm creates a banGorm bound to the given connection.
func NewBanGorm(db *gorm.DB) *banGorm {
	return &banGorm{db: db}
}

// FindActive returns the most recent active ban for userID.
func (r *banGorm) FindActive(ctx context.Context, userID string) (*entity.Ban, error) {
	var b entity.Ban
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("banned_at DESC").
		First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrBanNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Create persists a new ban record.
func (r *banGorm) Create(ctx context.Context, b *entity.Ban) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// Deactivate flips IsActive to false.
func (r *banGorm) Deactivate(ctx context.Context, b *entity.Ban) error {
	res := r.db.WithContext(ctx).Model(&entity.Ban{}).
		Where("id = ?", b.ID).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrBanNotFound
	}
	return nil
}

// ListActive returns all active bans, most recent first.
func (r *banGorm) ListActive(ctx context.Context) ([]*entity.Ban, error) {
	var bans []*entity.Ban
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("banned_at DESC").
		Find(&bans).Error; err != nil {
		return nil, err
	}
	return bans, nil
}
