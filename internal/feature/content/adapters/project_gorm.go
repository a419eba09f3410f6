package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"manassa_backend/internal/feature/content/domain/entity"
	"manassa_backend/internal/feature/content/usecase"
)

type projectGorm struct {
	db *gorm.DB
}

var _ usecase.ProjectRepository = (*projectGorm)(nil)

// NewProjectGorm creates a ProjectRepository backed by gorm.
func NewProjectGorm(db *gorm.DB) *projectGorm {
	return &projectGorm{db: db}
}

func (r *projectGorm) Create(ctx context.Context, p *entity.Project) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrSlugInUse
		}
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *projectGorm) Update(ctx context.Context, p *entity.Project) error {
	res := r.db.WithContext(ctx).Model(p).
		Select("Slug", "TitleAR", "TitleEN", "DescriptionAR", "DescriptionEN",
			"RepoURL", "LiveURL", "ImageURL", "Published").
		Updates(p)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return usecase.ErrSlugInUse
		}
		return fmt.Errorf("update project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrProjectNotFound
	}
	return nil
}

func (r *projectGorm) Delete(ctx context.Context, slug string) error {
	res := r.db.WithContext(ctx).Where("slug = ?", slug).Delete(&entity.Project{})
	if res.Error != nil {
		return fmt.Errorf("delete project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrProjectNotFound
	}
	return nil
}

func (r *projectGorm) FindBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	var p entity.Project
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return &p, nil
}

func (r *projectGorm) List(ctx context.Context, publishedOnly bool) ([]*entity.Project, error) {
	q := r.db.WithContext(ctx).Order("created_at ASC")
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	var projects []*entity.Project
	if err := q.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}
