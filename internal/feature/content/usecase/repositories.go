package usecase

import (
	"context"

	"manassa_backend/internal/feature/content/domain/entity"
)

// ArticleRepository is the persistence port for articles. Create maps
// a duplicate slug to ErrSlugInUse; lookups map absence to
// ErrArticleNotFound. Delete is a soft delete.
type ArticleRepository interface {
	Create(ctx context.Context, a *entity.Article) error
	Update(ctx context.Context, a *entity.Article) error
	Delete(ctx context.Context, slug string) error
	FindBySlug(ctx context.Context, slug string) (*entity.Article, error)
	List(ctx context.Context, publishedOnly bool) ([]*entity.Article, error)
}

// ProjectRepository is the persistence port for projects, with the
// same error conventions as ArticleRepository.
type ProjectRepository interface {
	Create(ctx context.Context, p *entity.Project) error
	Update(ctx context.Context, p *entity.Project) error
	Delete(ctx context.Context, slug string) error
	FindBySlug(ctx context.Context, slug string) (*entity.Project, error)
	List(ctx context.Context, publishedOnly bool) ([]*entity.Project, error)
}

// TokenScheme issues and checks the capability tokens used for draft
// preview links.
type TokenScheme interface {
	Generate(subjectID, resourceID string) string
	Validate(tok, subjectID, resourceID string) bool
}
