// Package adapters provides the gorm-backed repositories for the
// content feature.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"manassa_backend/internal/feature/content/domain/entity"
	"manassa_backend/internal/feature/content/usecase"
)

type articleGorm struct {
	db *gorm.DB
}

var _ usecase.ArticleRepository = (*articleGorm)(nil)

// NewArticleGorm creates an ArticleRepository backed by gorm.
func NewArticleGorm(db *gorm.DB) *articleGorm {
	return &articleGorm{db: db}
}

func (r *articleGorm) Create(ctx context.Context, a *entity.Article) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrSlugInUse
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

func (r *articleGorm) Update(ctx context.Context, a *entity.Article) error {
	res := r.db.WithContext(ctx).Model(a).
		Select("Slug", "TitleAR", "TitleEN", "BodyAR", "BodyEN", "CoverURL", "Published").
		Updates(a)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return usecase.ErrSlugInUse
		}
		return fmt.Errorf("update article: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrArticleNotFound
	}
	return nil
}

func (r *articleGorm) Delete(ctx context.Context, slug string) error {
	res := r.db.WithContext(ctx).Where("slug = ?", slug).Delete(&entity.Article{})
	if res.Error != nil {
		return fmt.Errorf("delete article: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrArticleNotFound
	}
	return nil
}

func (r *articleGorm) FindBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	var a entity.Article
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	return &a, nil
}

func (r *articleGorm) List(ctx context.Context, publishedOnly bool) ([]*entity.Article, error) {
	q := r.db.WithContext(ctx).Order("created_at ASC")
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	var articles []*entity.Article
	if err := q.Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}
