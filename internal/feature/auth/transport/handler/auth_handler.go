// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"manassa_backend/internal/feature/auth/domain"
	"manassa_backend/internal/feature/auth/transport/http/dto"
	"manassa_backend/internal/feature/auth/usecase"
	"manassa_backend/internal/shared/i18n"
)

// AuthUsecase defines the authentication operations the handler needs.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type AuthUsecase interface {
	Signup(ctx context.Context, name, email, password string) (*usecase.LoginResult, error)
	Login(ctx context.Context, email, password string) (*usecase.LoginResult, error)
	AdminLogin(ctx context.Context, email, password string) (*usecase.LoginResult, error)
	Logout() error
	AdminLogout() error
}

// AuthHandler handles HTTP requests for authentication operations. All
// failures collapse to a {success:false, message} body with a localized
// message; internal errors are logged, never exposed.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates an AuthHandler with the usecase injected.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles user registration.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusRes{Message: i18n.MsgBackendFailure})
		return
	}

	res, err := h.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		status, msg := authFailure(err)
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(status, dto.StatusRes{Message: msg})
		return
	}

	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthRes{
		Success:   true,
		SubjectID: res.Account.ID,
		Name:      res.Account.Name,
		Token:     res.Token,
	})
}

// Login handles user login.
func (h *AuthHandler) Login(c *gin.Context) {
	h.login(c, h.auth.Login, "user")
}

// AdminLogin handles admin login against the namespaced attempt budget.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.login(c, h.auth.AdminLogin, "admin")
}

func (h *AuthHandler) login(c *gin.Context, op func(context.Context, string, string) (*usecase.LoginResult, error), surface string) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusRes{Message: i18n.MsgInvalidCredentials})
		return
	}

	res, err := op(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status, msg := authFailure(err)
		slog.Warn("login failed", "surface", surface, "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(status, dto.StatusRes{Message: msg})
		return
	}

	slog.Info("login successful", "surface", surface, "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthRes{
		Success:   true,
		SubjectID: res.Account.ID,
		Name:      res.Account.Name,
		Token:     res.Token,
	})
}

// Logout clears the user session slot.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(); err != nil {
		c.JSON(http.StatusInternalServerError, dto.StatusRes{Message: i18n.MsgBackendFailure})
		return
	}
	c.JSON(http.StatusOK, dto.StatusRes{Success: true})
}

// AdminLogout clears the admin session slot.
func (h *AuthHandler) AdminLogout(c *gin.Context) {
	if err := h.auth.AdminLogout(); err != nil {
		c.JSON(http.StatusInternalServerError, dto.StatusRes{Message: i18n.MsgBackendFailure})
		return
	}
	c.JSON(http.StatusOK, dto.StatusRes{Success: true})
}

// authFailure maps an auth error to an HTTP status and a localized
// message. Unknown errors collapse to a generic backend failure so no
// internal detail leaks.
func authFailure(err error) (int, string) {
	var rle *usecase.RateLimitedError
	switch {
	case errors.As(err, &rle):
		return http.StatusTooManyRequests, i18n.MsgRateLimited(rle.RetryAfter)
	case errors.Is(err, usecase.ErrInvalidEmail):
		return http.StatusBadRequest, i18n.MsgInvalidEmail
	case errors.Is(err, usecase.ErrInvalidName):
		return http.StatusBadRequest, i18n.MsgInvalidName
	case errors.Is(err, usecase.ErrWeakPassword):
		return http.StatusBadRequest, i18n.MsgWeakPassword
	case errors.Is(err, domain.ErrEmailInUse):
		return http.StatusConflict, i18n.MsgEmailInUse
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, i18n.MsgInvalidCredentials
	case errors.Is(err, domain.ErrNotAdmin):
		return http.StatusForbidden, i18n.MsgNotAdmin
	default:
		return http.StatusInternalServerError, i18n.MsgBackendFailure
	}
}
