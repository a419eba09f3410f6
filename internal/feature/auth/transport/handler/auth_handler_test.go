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

	"manassa_backend/internal/feature/auth/domain"
	"manassa_backend/internal/feature/auth/domain/entity"
	"manassa_backend/internal/feature/auth/usecase"
	"manassa_backend/internal/shared/i18n"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignupFunc     func(name, email, password string) (*usecase.LoginResult, error)
	LoginFunc      func(email, password string) (*usecase.LoginResult, error)
	AdminLoginFunc func(email, password string) (*usecase.LoginResult, error)
}

func (m *mockAuthUsecase) Signup(_ context.Context, name, email, password string) (*usecase.LoginResult, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(name, email, password)
	}
	return okResult(), nil
}

func (m *mockAuthUsecase) Login(_ context.Context, email, password string) (*usecase.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(email, password)
	}
	return okResult(), nil
}

func (m *mockAuthUsecase) AdminLogin(_ context.Context, email, password string) (*usecase.LoginResult, error) {
	if m.AdminLoginFunc != nil {
		return m.AdminLoginFunc(email, password)
	}
	return okResult(), nil
}

func (m *mockAuthUsecase) Logout() error      { return nil }
func (m *mockAuthUsecase) AdminLogout() error { return nil }

func okResult() *usecase.LoginResult {
	return &usecase.LoginResult{
		Account: &entity.Account{ID: "acct-1", Email: "a@example.com", Name: "Ahmed"},
		Token:   "jwt-token",
	}
}

func perform(t *testing.T, h *AuthHandler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.POST("/admin/login", h.AdminLogin)
	r.POST("/logout", h.Logout)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("success returns token", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})

		w := perform(t, h, http.MethodPost, "/signup",
			`{"name":"Ahmed","email":"a@example.com","password":"abc12345"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "jwt-token")
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})

		w := perform(t, h, http.MethodPost, "/signup", `{"email":"a@example.com"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email maps to localized conflict", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{
			SignupFunc: func(name, email, password string) (*usecase.LoginResult, error) {
				return nil, domain.ErrEmailInUse
			},
		})

		w := perform(t, h, http.MethodPost, "/signup",
			`{"name":"Ahmed","email":"a@example.com","password":"abc12345"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		var res struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.False(t, res.Success)
		assert.Equal(t, i18n.MsgEmailInUse, res.Message)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("invalid credentials", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{
			LoginFunc: func(email, password string) (*usecase.LoginResult, error) {
				return nil, domain.ErrInvalidCredentials
			},
		})

		w := perform(t, h, http.MethodPost, "/login",
			`{"email":"a@example.com","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), i18n.MsgInvalidCredentials)
	})

	t.Run("rate limited reports remaining seconds", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{
			LoginFunc: func(email, password string) (*usecase.LoginResult, error) {
				return nil, &usecase.RateLimitedError{RetryAfter: 300}
			},
		})

		w := perform(t, h, http.MethodPost, "/login",
			`{"email":"a@example.com","password":"abc12345"}`)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "300")
	})

	t.Run("unexpected errors collapse to a generic message", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{
			LoginFunc: func(email, password string) (*usecase.LoginResult, error) {
				return nil, context.DeadlineExceeded
			},
		})

		w := perform(t, h, http.MethodPost, "/login",
			`{"email":"a@example.com","password":"abc12345"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), i18n.MsgBackendFailure)
		assert.NotContains(t, w.Body.String(), "deadline")
	})
}

func TestAuthHandler_AdminLogin(t *testing.T) {
	h := NewAuthHandler(&mockAuthUsecase{
		AdminLoginFunc: func(email, password string) (*usecase.LoginResult, error) {
			return nil, domain.ErrNotAdmin
		},
	})

	w := perform(t, h, http.MethodPost, "/admin/login",
		`{"email":"a@example.com","password":"abc12345"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), i18n.MsgNotAdmin)
}

func TestAuthHandler_Logout(t *testing.T) {
	h := NewAuthHandler(&mockAuthUsecase{})

	w := perform(t, h, http.MethodPost, "/logout", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}
