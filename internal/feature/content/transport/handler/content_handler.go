// Package handler provides the HTTP handlers for the content feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"manassa_backend/internal/feature/content/domain/entity"
	"manassa_backend/internal/feature/content/transport/http/dto"
	"manassa_backend/internal/feature/content/usecase"
	"manassa_backend/internal/shared/i18n"
)

// ContentUsecase defines the publishing operations the handler needs.
type ContentUsecase interface {
	CreateArticle(ctx context.Context, in usecase.ArticleInput) (*entity.Article, error)
	UpdateArticle(ctx context.Context, slug string, in usecase.ArticleInput) (*entity.Article, error)
	DeleteArticle(ctx context.Context, slug string) error
	Article(ctx context.Context, slug string) (*entity.Article, error)
	Articles(ctx context.Context, publishedOnly bool) ([]*entity.Article, error)
	PreviewLink(ctx context.Context, slug string) (string, error)
	ArticlePreview(ctx context.Context, slug, tok string) (*entity.Article, error)
	CreateProject(ctx context.Context, in usecase.ProjectInput) (*entity.Project, error)
	UpdateProject(ctx context.Context, slug string, in usecase.ProjectInput) (*entity.Project, error)
	DeleteProject(ctx context.Context, slug string) error
	Project(ctx context.Context, slug string) (*entity.Project, error)
	Projects(ctx context.Context, publishedOnly bool) ([]*entity.Project, error)
}

// ContentHandler handles HTTP requests for articles and projects.
type ContentHandler struct {
	content ContentUsecase
}

// NewContentHandler creates a ContentHandler with the usecase injected.
func NewContentHandler(content ContentUsecase) *ContentHandler {
	return &ContentHandler{content: content}
}

// ListArticles returns the published articles.
func (h *ContentHandler) ListArticles(c *gin.Context) {
	articles, err := h.content.Articles(c.Request.Context(), true)
	if err != nil {
		slog.Error("article list failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.StatusRes{Message: i18n.MsgBackendFailure})
		return
	}
	c.JSON(http.StatusOK, dto.ArticlesRes{Success: true, Articles: toArticleRes(articles)})
}

// ListAllArticles returns every article, drafts included.
func (h *ContentHandler) ListAllArticles(c *gin.Context) {
	articles, err := h.content.Articles(c.Request.Context(), false)
	if err != nil {
		slog.Error("article list failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.StatusRes{Message: i18n.MsgBackendFailure})
		return
	}
	c.JSON(http.StatusOK, dto.ArticlesRes{Success: true, Articles: toArticleRes(articles)})
}

// GetArticle returns one published article by slug. With a preview
// token it returns the draft instead.
func (h *ContentHandler) GetArticle(c *gin.Context) {
	slug := c.Param("slug")

	var (
		a   *entity.Article
		err error
	)
	if tok := c.Query("preview"); tok != "" {
		a, err = h.content.ArticlePreview(c.Request.Context(), slug, tok)
	} else {
		a, err = h.content.Article(c.Request.Context(), slug)
	}
	if err != nil {
		status, message := contentFailure(err)
		c.JSON(status, dto.StatusRes{Message: message})
		return
	}
	c.JSON(http.StatusOK, dto.ArticleItemRes{Success: true, Article: toArticleRes([]*entity.Article{a})[0]})
}

// CreateArticle persists a new article.
func (h *ContentHandler) CreateArticle(c *gin.Context) {
	var req dto.ArticleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusRes{Message: i18n.MsgInvalidTitle})
		return
	}

	a, err := h.content.CreateArticle(c.Request.Context(), articleInput(req))
	if err != nil {
		status, message := contentFailure(err)
		slog.Warn("create article failed", "error", err, "slug", req.Slug)
		c.JSON(status, dto.StatusRes{Message: message})
		return
	}

	slog.Info("article created", "slug", a.Slug, "published", a.Published)
	c.JSON(http.StatusCreated, dto.ArticleItemRes{Success: true, Article: toArticleRes([]*entity.Article{a})[0]})
}

// UpdateArticle rewrites the article stored under the path slug.
func (h *ContentHandler) UpdateArticle(c *gin.Context) {
	var req dto.ArticleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusRes{Message: i18n.MsgInvalidTitle})
		return
	}

	a, err := h.content.UpdateArticle(c.Request.Context(), c.Param("slug"), articleInput(req))
	if err != nil {
		status, message := contentFailure(err)
		slog.Warn("update article failed", "error", err, "slug", c.Param("slug"))
		c.JSON(status, dto.StatusRes{Message: message})
		return
	}
	c.JSON(http.StatusOK, dto.ArticleItemRes{Success: true, Article: toArticleRes([]*entity.Article{a})[0]})
}

// DeleteArticle soft-deletes the article stored under the path slug.
func (h *ContentHandler) DeleteArticle(c *gin.Context) {
	if err := h.content.DeleteArticle(c.Request.Context(), c.Param("slug")); err != nil {
		status, message := contentFailure(err)
		c.JSON(status, dto.StatusRes{Message: message})
		return
	}
	slog.Info("article deleted", "slug", c.Param("slug"))
	c.JSON(http.StatusOK, dto.StatusRes{Success: true})
}

// PreviewLink issues a draft preview token for the path slug.
func (h *ContentHandler) PreviewLink(c *gin.Context) {
	tok, err := h.content.PreviewLink(c.Request.Context(), c.Param("slug"))
	if err != nil {
		status, message := contentFailure(err)
		c.JSON(status, dto.StatusRes{Message: message})
		return
	}
	c.JSON(http.StatusCreated, dto.PreviewLinkRes{Success: true, Token: tok})
}

// ListProjects returns the published projects.
func (h *ContentHandler) ListProjects(c *gin.Context) {
	projects, err := h.content.Projects(c.Request.Context(), true)
	if err != nil {
		slog.Error("project list failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.StatusRes{Message: i18n.MsgBackendFailure})
		return
	}
	c.JSON(http.StatusOK, dto.ProjectsRes{Success: true, Projects: toProjectRes(projects)})
}

// ListAllProjects returns every project, drafts included.
func (h *ContentHandler) ListAllProjects(c *gin.Context) {
	projects, err := h.content.Projects(c.Request.Context(), false)
	if err != nil {
		slog.Error("project list failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.StatusRes{Message: i18n.MsgBackendFailure})
		return
	}
	c.JSON(http.StatusOK, dto.ProjectsRes{Success: true, Projects: toProjectRes(projects)})
}

// GetProject returns one published project by slug.
func (h *ContentHandler) GetProject(c *gin.Context) {
	p, err := h.content.Project(c.Request.Context(), c.Param("slug"))
	if err != nil {
		status, message := contentFailure(err)
		c.JSON(status, dto.StatusRes{Message: message})
		return
	}
	c.JSON(http.StatusOK, dto.ProjectItemRes{Success: true, Project: toProjectRes([]*entity.Project{p})[0]})
}

// CreateProject persists a new project.
func (h *ContentHandler) CreateProject(c *gin.Context) {
	var req dto.ProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusRes{Message: i18n.MsgInvalidTitle})
		return
	}

	p, err := h.content.CreateProject(c.Request.Context(), projectInput(req))
	if err != nil {
		status, message := contentFailure(err)
		slog.Warn("create project failed", "error", err, "slug", req.Slug)
		c.JSON(status, dto.StatusRes{Message: message})
		return
	}

	slog.Info("project created", "slug", p.Slug, "published", p.Published)
	c.JSON(http.StatusCreated, dto.ProjectItemRes{Success: true, Project: toProjectRes([]*entity.Project{p})[0]})
}

// UpdateProject rewrites the project stored under the path slug.
func (h *ContentHandler) UpdateProject(c *gin.Context) {
	var req dto.ProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusRes{Message: i18n.MsgInvalidTitle})
		return
	}

	p, err := h.content.UpdateProject(c.Request.Context(), c.Param("slug"), projectInput(req))
	if err != nil {
		status, message := contentFailure(err)
		slog.Warn("update project failed", "error", err, "slug", c.Param("slug"))
		c.JSON(status, dto.StatusRes{Message: message})
		return
	}
	c.JSON(http.StatusOK, dto.ProjectItemRes{Success: true, Project: toProjectRes([]*entity.Project{p})[0]})
}

// DeleteProject soft-deletes the project stored under the path slug.
func (h *ContentHandler) DeleteProject(c *gin.Context) {
	if err := h.content.DeleteProject(c.Request.Context(), c.Param("slug")); err != nil {
		status, message := contentFailure(err)
		c.JSON(status, dto.StatusRes{Message: message})
		return
	}
	slog.Info("project deleted", "slug", c.Param("slug"))
	c.JSON(http.StatusOK, dto.StatusRes{Success: true})
}

func articleInput(req dto.ArticleReq) usecase.ArticleInput {
	return usecase.ArticleInput{
		Slug:      req.Slug,
		TitleAR:   req.TitleAR,
		TitleEN:   req.TitleEN,
		BodyAR:    req.BodyAR,
		BodyEN:    req.BodyEN,
		CoverURL:  req.CoverURL,
		Published: req.Published,
	}
}

func projectInput(req dto.ProjectReq) usecase.ProjectInput {
	return usecase.ProjectInput{
		Slug:          req.Slug,
		TitleAR:       req.TitleAR,
		TitleEN:       req.TitleEN,
		DescriptionAR: req.DescriptionAR,
		DescriptionEN: req.DescriptionEN,
		RepoURL:       req.RepoURL,
		LiveURL:       req.LiveURL,
		ImageURL:      req.ImageURL,
		Published:     req.Published,
	}
}

func toArticleRes(articles []*entity.Article) []dto.ArticleRes {
	out := make([]dto.ArticleRes, 0, len(articles))
	for _, a := range articles {
		out = append(out, dto.ArticleRes{
			ID:        a.ID,
			Slug:      a.Slug,
			TitleAR:   a.TitleAR,
			TitleEN:   a.TitleEN,
			BodyAR:    a.BodyAR,
			BodyEN:    a.BodyEN,
			CoverURL:  a.CoverURL,
			Published: a.Published,
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		})
	}
	return out
}

func toProjectRes(projects []*entity.Project) []dto.ProjectRes {
	out := make([]dto.ProjectRes, 0, len(projects))
	for _, p := range projects {
		out = append(out, dto.ProjectRes{
			ID:            p.ID,
			Slug:          p.Slug,
			TitleAR:       p.TitleAR,
			TitleEN:       p.TitleEN,
			DescriptionAR: p.DescriptionAR,
			DescriptionEN: p.DescriptionEN,
			RepoURL:       p.RepoURL,
			LiveURL:       p.LiveURL,
			ImageURL:      p.ImageURL,
			Published:     p.Published,
			CreatedAt:     p.CreatedAt,
			UpdatedAt:     p.UpdatedAt,
		})
	}
	return out
}

// contentFailure maps a content error to an HTTP status and a
// localized message.
func contentFailure(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidSlug):
		return http.StatusBadRequest, i18n.MsgInvalidSlug
	case errors.Is(err, usecase.ErrInvalidTitle):
		return http.StatusBadRequest, i18n.MsgInvalidTitle
	case errors.Is(err, usecase.ErrInvalidURL):
		return http.StatusBadRequest, i18n.MsgInvalidURL
	case errors.Is(err, usecase.ErrSlugInUse):
		return http.StatusConflict, i18n.MsgSlugInUse
	case errors.Is(err, usecase.ErrArticleNotFound), errors.Is(err, usecase.ErrInvalidPreview):
		return http.StatusNotFound, i18n.MsgArticleNotFound
	case errors.Is(err, usecase.ErrProjectNotFound):
		return http.StatusNotFound, i18n.MsgProjectNotFound
	default:
		return http.StatusInternalServerError, i18n.MsgBackendFailure
	}
}
