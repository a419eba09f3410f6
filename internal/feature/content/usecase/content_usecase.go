// Package usecase implements the publishing rules for bilingual
// articles and projects: validation and sanitization on every write,
// published-only reads for the public surface, and capability-token
// preview links for drafts.
package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"manassa_backend/internal/feature/content/domain/entity"
	"manassa_backend/internal/shared/validation"
)

// previewSubject is the fixed subject bound into draft preview tokens.
// The capability is "may view this draft", not tied to a person, so a
// preview link can be handed to a reviewer without an account.
const previewSubject = "preview"

// ArticleInput carries the writable article fields.
type ArticleInput struct {
	Slug      string
	TitleAR   string
	TitleEN   string
	BodyAR    string
	BodyEN    string
	CoverURL  string
	Published bool
}

// ProjectInput carries the writable project fields.
type ProjectInput struct {
	Slug          string
	TitleAR       string
	TitleEN       string
	DescriptionAR string
	DescriptionEN string
	RepoURL       string
	LiveURL       string
	ImageURL      string
	Published     bool
}

// ContentUsecase implements article and project publishing.
type ContentUsecase struct {
	articles ArticleRepository
	projects ProjectRepository
	tokens   TokenScheme
}

// NewContentUsecase creates a ContentUsecase with its dependencies
// injected.
func NewContentUsecase(articles ArticleRepository, projects ProjectRepository, tokens TokenScheme) *ContentUsecase {
	return &ContentUsecase{articles: articles, projects: projects, tokens: tokens}
}

func checkArticleInput(in ArticleInput) error {
	if !validation.ValidSlug(in.Slug) {
		return ErrInvalidSlug
	}
	if !validation.ValidTitle(in.TitleAR) || !validation.ValidTitle(in.TitleEN) {
		return ErrInvalidTitle
	}
	if in.CoverURL != "" && !validation.ValidURL(in.CoverURL) {
		return ErrInvalidURL
	}
	return nil
}

func checkProjectInput(in ProjectInput) error {
	if !validation.ValidSlug(in.Slug) {
		return ErrInvalidSlug
	}
	if !validation.ValidTitle(in.TitleAR) || !validation.ValidTitle(in.TitleEN) {
		return ErrInvalidTitle
	}
	for _, u := range []string{in.RepoURL, in.LiveURL, in.ImageURL} {
		if u != "" && !validation.ValidURL(u) {
			return ErrInvalidURL
		}
	}
	return nil
}

// CreateArticle validates, sanitizes and persists a new article.
func (u *ContentUsecase) CreateArticle(ctx context.Context, in ArticleInput) (*entity.Article, error) {
	if err := checkArticleInput(in); err != nil {
		return nil, err
	}

	a := &entity.Article{
		ID:        uuid.NewString(),
		Slug:      in.Slug,
		TitleAR:   validation.EscapeHTML(in.TitleAR),
		TitleEN:   validation.EscapeHTML(in.TitleEN),
		BodyAR:    validation.SanitizeHTML(in.BodyAR),
		BodyEN:    validation.SanitizeHTML(in.BodyEN),
		CoverURL:  in.CoverURL,
		Published: in.Published,
	}
	if err := u.articles.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return a, nil
}

// UpdateArticle rewrites the article stored under slug. The slug in
// the input replaces the current one, so renames are allowed.
func (u *ContentUsecase) UpdateArticle(ctx context.Context, slug string, in ArticleInput) (*entity.Article, error) {
	if err := checkArticleInput(in); err != nil {
		return nil, err
	}

	a, err := u.articles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	a.Slug = in.Slug
	a.TitleAR = validation.EscapeHTML(in.TitleAR)
	a.TitleEN = validation.EscapeHTML(in.TitleEN)
	a.BodyAR = validation.SanitizeHTML(in.BodyAR)
	a.BodyEN = validation.SanitizeHTML(in.BodyEN)
	a.CoverURL = in.CoverURL
	a.Published = in.Published
	if err := u.articles.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return a, nil
}

// DeleteArticle soft-deletes the article stored under slug.
func (u *ContentUsecase) DeleteArticle(ctx context.Context, slug string) error {
	return u.articles.Delete(ctx, slug)
}

// Article returns the published article stored under slug. Drafts are
// invisible here; use a preview token.
func (u *ContentUsecase) Article(ctx context.Context, slug string) (*entity.Article, error) {
	a, err := u.articles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !a.Published {
		return nil, ErrArticleNotFound
	}
	return a, nil
}

// Articles lists articles, oldest first. publishedOnly hides drafts
// for the public surface.
func (u *ContentUsecase) Articles(ctx context.Context, publishedOnly bool) ([]*entity.Article, error) {
	return u.articles.List(ctx, publishedOnly)
}

// PreviewLink issues a capability token for viewing the draft stored
// under slug. Anyone holding the token may view it until it expires.
func (u *ContentUsecase) PreviewLink(ctx context.Context, slug string) (string, error) {
	a, err := u.articles.FindBySlug(ctx, slug)
	if err != nil {
		return "", err
	}
	return u.tokens.Generate(previewSubject, a.ID), nil
}

// ArticlePreview returns the article stored under slug, draft or not,
// if tok is a live preview token for it.
func (u *ContentUsecase) ArticlePreview(ctx context.Context, slug, tok string) (*entity.Article, error) {
	a, err := u.articles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !u.tokens.Validate(tok, previewSubject, a.ID) {
		return nil, ErrInvalidPreview
	}
	return a, nil
}

// CreateProject validates, sanitizes and persists a new project.
func (u *ContentUsecase) CreateProject(ctx context.Context, in ProjectInput) (*entity.Project, error) {
	if err := checkProjectInput(in); err != nil {
		return nil, err
	}

	p := &entity.Project{
		ID:            uuid.NewString(),
		Slug:          in.Slug,
		TitleAR:       validation.EscapeHTML(in.TitleAR),
		TitleEN:       validation.EscapeHTML(in.TitleEN),
		DescriptionAR: validation.SanitizeHTML(in.DescriptionAR),
		DescriptionEN: validation.SanitizeHTML(in.DescriptionEN),
		RepoURL:       in.RepoURL,
		LiveURL:       in.LiveURL,
		ImageURL:      in.ImageURL,
		Published:     in.Published,
	}
	if err := u.projects.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

// UpdateProject rewrites the project stored under slug.
func (u *ContentUsecase) UpdateProject(ctx context.Context, slug string, in ProjectInput) (*entity.Project, error) {
	if err := checkProjectInput(in); err != nil {
		return nil, err
	}

	p, err := u.projects.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	p.Slug = in.Slug
	p.TitleAR = validation.EscapeHTML(in.TitleAR)
	p.TitleEN = validation.EscapeHTML(in.TitleEN)
	p.DescriptionAR = validation.SanitizeHTML(in.DescriptionAR)
	p.DescriptionEN = validation.SanitizeHTML(in.DescriptionEN)
	p.RepoURL = in.RepoURL
	p.LiveURL = in.LiveURL
	p.ImageURL = in.ImageURL
	p.Published = in.Published
	if err := u.projects.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return p, nil
}

// DeleteProject soft-deletes the project stored under slug.
func (u *ContentUsecase) DeleteProject(ctx context.Context, slug string) error {
	return u.projects.Delete(ctx, slug)
}

// Project returns the published project stored under slug.
func (u *ContentUsecase) Project(ctx context.Context, slug string) (*entity.Project, error) {
	p, err := u.projects.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !p.Published {
		return nil, ErrProjectNotFound
	}
	return p, nil
}

// Projects lists projects, oldest first.
func (u *ContentUsecase) Projects(ctx context.Context, publishedOnly bool) ([]*entity.Project, error) {
	return u.projects.List(ctx, publishedOnly)
}
