package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manassa_backend/internal/feature/content/domain/entity"
	"manassa_backend/internal/feature/content/transport/http/dto"
	"manassa_backend/internal/feature/content/usecase"
	"manassa_backend/internal/shared/i18n"
)

// mockContentUsecase is a mock implementation of the ContentUsecase
// interface.
type mockContentUsecase struct {
	CreateArticleFunc  func(in usecase.ArticleInput) (*entity.Article, error)
	UpdateArticleFunc  func(slug string, in usecase.ArticleInput) (*entity.Article, error)
	DeleteArticleFunc  func(slug string) error
	ArticleFunc        func(slug string) (*entity.Article, error)
	ArticlesFunc       func(publishedOnly bool) ([]*entity.Article, error)
	PreviewLinkFunc    func(slug string) (string, error)
	ArticlePreviewFunc func(slug, tok string) (*entity.Article, error)
	CreateProjectFunc  func(in usecase.ProjectInput) (*entity.Project, error)
	UpdateProjectFunc  func(slug string, in usecase.ProjectInput) (*entity.Project, error)
	DeleteProjectFunc  func(slug string) error
	ProjectFunc        func(slug string) (*entity.Project, error)
	ProjectsFunc       func(publishedOnly bool) ([]*entity.Project, error)
}

func (m *mockContentUsecase) CreateArticle(_ context.Context, in usecase.ArticleInput) (*entity.Article, error) {
	if m.CreateArticleFunc != nil {
		return m.CreateArticleFunc(in)
	}
	return &entity.Article{ID: "art-1", Slug: in.Slug}, nil
}

func (m *mockContentUsecase) UpdateArticle(_ context.Context, slug string, in usecase.ArticleInput) (*entity.Article, error) {
	if m.UpdateArticleFunc != nil {
		return m.UpdateArticleFunc(slug, in)
	}
	return &entity.Article{ID: "art-1", Slug: in.Slug}, nil
}

func (m *mockContentUsecase) DeleteArticle(_ context.Context, slug string) error {
	if m.DeleteArticleFunc != nil {
		return m.DeleteArticleFunc(slug)
	}
	return nil
}

func (m *mockContentUsecase) Article(_ context.Context, slug string) (*entity.Article, error) {
	if m.ArticleFunc != nil {
		return m.ArticleFunc(slug)
	}
	return &entity.Article{ID: "art-1", Slug: slug}, nil
}

func (m *mockContentUsecase) Articles(_ context.Context, publishedOnly bool) ([]*entity.Article, error) {
	if m.ArticlesFunc != nil {
		return m.ArticlesFunc(publishedOnly)
	}
	return nil, nil
}

func (m *mockContentUsecase) PreviewLink(_ context.Context, slug string) (string, error) {
	if m.PreviewLinkFunc != nil {
		return m.PreviewLinkFunc(slug)
	}
	return "tok", nil
}

func (m *mockContentUsecase) ArticlePreview(_ context.Context, slug, tok string) (*entity.Article, error) {
	if m.ArticlePreviewFunc != nil {
		return m.ArticlePreviewFunc(slug, tok)
	}
	return &entity.Article{ID: "art-1", Slug: slug}, nil
}

func (m *mockContentUsecase) CreateProject(_ context.Context, in usecase.ProjectInput) (*entity.Project, error) {
	if m.CreateProjectFunc != nil {
		return m.CreateProjectFunc(in)
	}
	return &entity.Project{ID: "prj-1", Slug: in.Slug}, nil
}

func (m *mockContentUsecase) UpdateProject(_ context.Context, slug string, in usecase.ProjectInput) (*entity.Project, error) {
	if m.UpdateProjectFunc != nil {
		return m.UpdateProjectFunc(slug, in)
	}
	return &entity.Project{ID: "prj-1", Slug: in.Slug}, nil
}

func (m *mockContentUsecase) DeleteProject(_ context.Context, slug string) error {
	if m.DeleteProjectFunc != nil {
		return m.DeleteProjectFunc(slug)
	}
	return nil
}

func (m *mockContentUsecase) Project(_ context.Context, slug string) (*entity.Project, error) {
	if m.ProjectFunc != nil {
		return m.ProjectFunc(slug)
	}
	return &entity.Project{ID: "prj-1", Slug: slug}, nil
}

func (m *mockContentUsecase) Projects(_ context.Context, publishedOnly bool) ([]*entity.Project, error) {
	if m.ProjectsFunc != nil {
		return m.ProjectsFunc(publishedOnly)
	}
	return nil, nil
}

func newContentRouter(h *ContentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/articles", h.ListArticles)
	r.GET("/articles/:slug", h.GetArticle)
	r.GET("/projects", h.ListProjects)
	r.GET("/projects/:slug", h.GetProject)
	r.GET("/admin/articles", h.ListAllArticles)
	r.POST("/admin/articles", h.CreateArticle)
	r.PUT("/admin/articles/:slug", h.UpdateArticle)
	r.DELETE("/admin/articles/:slug", h.DeleteArticle)
	r.POST("/admin/articles/:slug/preview", h.PreviewLink)
	r.POST("/admin/projects", h.CreateProject)
	r.PUT("/admin/projects/:slug", h.UpdateProject)
	r.DELETE("/admin/projects/:slug", h.DeleteProject)
	return r
}

func performContent(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestContentHandler_Articles(t *testing.T) {
	t.Run("public list asks for published only", func(t *testing.T) {
		var gotPublishedOnly bool
		h := NewContentHandler(&mockContentUsecase{
			ArticlesFunc: func(publishedOnly bool) ([]*entity.Article, error) {
				gotPublishedOnly = publishedOnly
				return []*entity.Article{{ID: "art-1", Slug: "first-post", TitleEN: "First"}}, nil
			},
		})
		w := performContent(newContentRouter(h), http.MethodGet, "/articles", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, gotPublishedOnly)
		var res dto.ArticlesRes
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Len(t, res.Articles, 1)
		assert.Equal(t, "first-post", res.Articles[0].Slug)
	})

	t.Run("admin list includes drafts", func(t *testing.T) {
		var gotPublishedOnly bool
		h := NewContentHandler(&mockContentUsecase{
			ArticlesFunc: func(publishedOnly bool) ([]*entity.Article, error) {
				gotPublishedOnly = publishedOnly
				return nil, nil
			},
		})
		performContent(newContentRouter(h), http.MethodGet, "/admin/articles", "")
		assert.False(t, gotPublishedOnly)
	})

	t.Run("missing article is 404 with localized message", func(t *testing.T) {
		h := NewContentHandler(&mockContentUsecase{
			ArticleFunc: func(slug string) (*entity.Article, error) {
				return nil, usecase.ErrArticleNotFound
			},
		})
		w := performContent(newContentRouter(h), http.MethodGet, "/articles/missing", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		var res dto.StatusRes
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, i18n.MsgArticleNotFound, res.Message)
	})

	t.Run("preview query routes to the token check", func(t *testing.T) {
		var gotTok string
		h := NewContentHandler(&mockContentUsecase{
			ArticlePreviewFunc: func(slug, tok string) (*entity.Article, error) {
				gotTok = tok
				return &entity.Article{ID: "art-1", Slug: slug}, nil
			},
		})
		w := performContent(newContentRouter(h), http.MethodGet, "/articles/draft-post?preview=tok-1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "tok-1", gotTok)
	})

	t.Run("expired preview token is a plain 404", func(t *testing.T) {
		h := NewContentHandler(&mockContentUsecase{
			ArticlePreviewFunc: func(slug, tok string) (*entity.Article, error) {
				return nil, usecase.ErrInvalidPreview
			},
		})
		w := performContent(newContentRouter(h), http.MethodGet, "/articles/draft-post?preview=stale", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		var res dto.StatusRes
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, i18n.MsgArticleNotFound, res.Message, "token state never leaks")
	})
}

func TestContentHandler_CreateArticle(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := NewContentHandler(&mockContentUsecase{})
		w := performContent(newContentRouter(h), http.MethodPost, "/admin/articles",
			`{"slug":"first-post","titleAr":"أول مقال","titleEn":"First post"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		var res dto.ArticleItemRes
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.True(t, res.Success)
		assert.Equal(t, "first-post", res.Article.Slug)
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		h := NewContentHandler(&mockContentUsecase{
			CreateArticleFunc: func(in usecase.ArticleInput) (*entity.Article, error) {
				return nil, usecase.ErrSlugInUse
			},
		})
		w := performContent(newContentRouter(h), http.MethodPost, "/admin/articles",
			`{"slug":"first-post","titleAr":"أول مقال","titleEn":"First post"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		var res dto.StatusRes
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, i18n.MsgSlugInUse, res.Message)
	})

	t.Run("bad slug is 400", func(t *testing.T) {
		h := NewContentHandler(&mockContentUsecase{
			CreateArticleFunc: func(in usecase.ArticleInput) (*entity.Article, error) {
				return nil, usecase.ErrInvalidSlug
			},
		})
		w := performContent(newContentRouter(h), http.MethodPost, "/admin/articles",
			`{"slug":"Bad Slug","titleAr":"أول مقال","titleEn":"First post"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing titles rejected before the usecase", func(t *testing.T) {
		called := false
		h := NewContentHandler(&mockContentUsecase{
			CreateArticleFunc: func(in usecase.ArticleInput) (*entity.Article, error) {
				called = true
				return nil, nil
			},
		})
		w := performContent(newContentRouter(h), http.MethodPost, "/admin/articles", `{"slug":"first-post"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})
}

func TestContentHandler_Projects(t *testing.T) {
	t.Run("bad url is 400 with localized message", func(t *testing.T) {
		h := NewContentHandler(&mockContentUsecase{
			CreateProjectFunc: func(in usecase.ProjectInput) (*entity.Project, error) {
				return nil, usecase.ErrInvalidURL
			},
		})
		w := performContent(newContentRouter(h), http.MethodPost, "/admin/projects",
			`{"slug":"chess-engine","titleAr":"محرك","titleEn":"Engine","repoUrl":"ftp://x"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var res dto.StatusRes
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, i18n.MsgInvalidURL, res.Message)
	})

	t.Run("delete missing project is 404", func(t *testing.T) {
		h := NewContentHandler(&mockContentUsecase{
			DeleteProjectFunc: func(slug string) error { return usecase.ErrProjectNotFound },
		})
		w := performContent(newContentRouter(h), http.MethodDelete, "/admin/projects/missing", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("update forwards the path slug", func(t *testing.T) {
		var gotSlug string
		h := NewContentHandler(&mockContentUsecase{
			UpdateProjectFunc: func(slug string, in usecase.ProjectInput) (*entity.Project, error) {
				gotSlug = slug
				return &entity.Project{ID: "prj-1", Slug: in.Slug}, nil
			},
		})
		w := performContent(newContentRouter(h), http.MethodPut, "/admin/projects/chess-engine",
			`{"slug":"chess-engine-2","titleAr":"محرك","titleEn":"Engine"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "chess-engine", gotSlug)
	})
}

func TestContentHandler_PreviewLink(t *testing.T) {
	h := NewContentHandler(&mockContentUsecase{
		PreviewLinkFunc: func(slug string) (string, error) { return "tok-1", nil },
	})
	w := performContent(newContentRouter(h), http.MethodPost, "/admin/articles/draft-post/preview", "")

	assert.Equal(t, http.StatusCreated, w.Code)
	var res dto.PreviewLinkRes
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "tok-1", res.Token)
}
