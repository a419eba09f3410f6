// Package handler provides the HTTP handlers for the chat feature,
// including the SSE streams clients follow for live updates.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"manassa_backend/internal/feature/chat/domain/entity"
	"manassa_backend/internal/feature/chat/transport/http/dto"
	"manassa_backend/internal/feature/chat/usecase"
	jwtmw "manassa_backend/internal/platform/jwt"
	"manassa_backend/internal/shared/i18n"
)

// ChatUsecase defines the chat operations the handler needs.
type ChatUsecase interface {
	IsChatOpen(ctx context.Context) (bool, error)
	OpenChat(ctx context.Context, adminID string) (*entity.ChatSession, error)
	CloseChat(ctx context.Context, adminID string) error
	SendMessage(ctx context.Context, authorID, name, body, avatarURL string, isAdmin bool) (*entity.Message, error)
	DeleteMessage(ctx context.Context, id, adminID string) error
	ClearAllMessages(ctx context.Context, adminID string) (int64, error)
	Messages(ctx context.Context) ([]*entity.Message, error)
	BanUser(ctx context.Context, userID, adminID, reason string, duration time.Duration) (*entity.Ban, error)
	UnbanUser(ctx context.Context, userID string) error
	BannedUsers(ctx context.Context) ([]*entity.Ban, error)
	SubscribeMessages(ctx context.Context) (<-chan []*entity.Message, func(), error)
	SubscribeStatus(ctx context.Context) (<-chan bool, func(), error)
}

// ChatHandler handles HTTP requests for the chat feature.
type ChatHandler struct {
	chat ChatUsecase
}

// NewChatHandler creates a ChatHandler with the usecase injected.
func NewChatHandler(chat ChatUsecase) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Status reports whether a chat session is currently open.
func (h *ChatHandler) Status(c *gin.Context) {
	open, err := h.chat.IsChatOpen(c.Request.Context())
	if err != nil {
		slog.Error("chat status lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.StatusRes{Message: i18n.MsgBackendFailure})
		return
	}
	c.JSON(http.StatusOK, dto.ChatStatusRes{Success: true, Open: open})
}

// Messages returns the recent message history, oldest first.
func (h *ChatHandler) Messages(c *gin.Context) {
	msgs, err := h.chat.Messages(c.Request.Context())
	if err != nil {
		slog.Error("message history lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.StatusRes{Message: i18n.MsgBackendFailure})
		return
	}
	c.JSON(http.StatusOK, dto.MessagesRes{Success: true, Messages: toMessageRes(msgs)})
}

// SendMessage posts a message as the authenticated subject.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req dto.SendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusRes{Message: i18n.MsgInvalidMessage})
		return
	}

	subjectID := c.GetString(jwtmw.ContextSubjectID)
	isAdmin := c.GetString(jwtmw.ContextRole) == jwtmw.RoleAdmin

	msg, err := h.chat.SendMessage(c.Request.Context(), subjectID, req.Name, req.Body, req.AvatarURL, isAdmin)
	if err != nil {
		status, message := chatFailure(err)
		slog.Warn("send message rejected", "error", err, "subject_id", subjectID, "remote_addr", c.ClientIP())
		c.JSON(status, dto.StatusRes{Message: message})
		return
	}

	c.JSON(http.StatusCreated, dto.MessagesRes{Success: true, Messages: toMessageRes([]*entity.Message{msg})})
}

// StreamMessages streams message-history snapshots over SSE until the
// client disconnects.
func (h *ChatHandler) StreamMessages(c *gin.Context) {
	snapshots, cancel, err := h.chat.SubscribeMessages(c.Request.Context())
	if err != nil {
		slog.Error("message subscription failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.StatusRes{Message: i18n.MsgBackendFailure})
		return
	}
	defer cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case msgs, ok := <-snapshots:
			if !ok {
				return false
			}
			c.SSEvent("messages", dto.MessagesRes{Success: true, Messages: toMessageRes(msgs)})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// StreamStatus streams open/closed snapshots over SSE until the client
// disconnects.
func (h *ChatHandler) StreamStatus(c *gin.Context) {
	snapshots, cancel, err := h.chat.SubscribeStatus(c.Request.Context())
	if err != nil {
		slog.Error("status subscription failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.StatusRes{Message: i18n.MsgBackendFailure})
		return
	}
	defer cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case open, ok := <-snapshots:
			if !ok {
				return false
			}
			c.SSEvent("status", dto.ChatStatusRes{Success: true, Open: open})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// OpenChat starts a new chat session.
func (h *ChatHandler) OpenChat(c *gin.Context) {
	adminID := c.GetString(jwtmw.ContextSubjectID)
	if _, err := h.chat.OpenChat(c.Request.Context(), adminID); err != nil {
		status, message := chatFailure(err)
		slog.Warn("open chat failed", "error", err, "admin_id", adminID)
		c.JSON(status, dto.StatusRes{Message: message})
		return
	}
	slog.Info("chat opened", "admin_id", adminID)
	c.JSON(http.StatusCreated, dto.StatusRes{Success: true})
}

// CloseChat ends the current chat session.
func (h *ChatHandler) CloseChat(c *gin.Context) {
	adminID := c.GetString(jwtmw.ContextSubjectID)
	if err := h.chat.CloseChat(c.Request.Context(), adminID); err != nil {
		status, message := chatFailure(err)
		slog.Warn("close chat failed", "error", err, "admin_id", adminID)
		c.JSON(status, dto.StatusRes{Message: message})
		return
	}
	slog.Info("chat closed", "admin_id", adminID)
	c.JSON(http.StatusOK, dto.StatusRes{Success: true})
}

// DeleteMessage soft-deletes one message.
func (h *ChatHandler) DeleteMessage(c *gin.Context) {
	adminID := c.GetString(jwtmw.ContextSubjectID)
	id := c.Param("id")
	if err := h.chat.DeleteMessage(c.Request.Context(), id, adminID); err != nil {
		status, message := chatFailure(err)
		slog.Warn("delete message failed", "error", err, "message_id", id, "admin_id", adminID)
		c.JSON(status, dto.StatusRes{Message: message})
		return
	}
	c.JSON(http.StatusOK, dto.StatusRes{Success: true})
}

// ClearMessages soft-deletes every message.
func (h *ChatHandler) ClearMessages(c *gin.Context) {
	adminID := c.GetString(jwtmw.ContextSubjectID)
	n, err := h.chat.ClearAllMessages(c.Request.Context(), adminID)
	if err != nil {
		slog.Error("clear messages failed", "error", err, "admin_id", adminID)
		c.JSON(http.StatusInternalServerError, dto.StatusRes{Message: i18n.MsgBackendFailure})
		return
	}
	slog.Info("chat cleared", "admin_id", adminID, "cleared", n)
	c.JSON(http.StatusOK, dto.ClearRes{Success: true, Cleared: n})
}

// BanUser bans a user from the chat, permanently or for a duration.
func (h *ChatHandler) BanUser(c *gin.Context) {
	var req dto.BanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusRes{Message: i18n.MsgBackendFailure})
		return
	}

	adminID := c.GetString(jwtmw.ContextSubjectID)
	duration := time.Duration(req.DurationSeconds) * time.Second
	if _, err := h.chat.BanUser(c.Request.Context(), req.UserID, adminID, req.Reason, duration); err != nil {
		status, message := chatFailure(err)
		slog.Warn("ban failed", "error", err, "user_id", req.UserID, "admin_id", adminID)
		c.JSON(status, dto.StatusRes{Message: message})
		return
	}
	slog.Info("user banned", "user_id", req.UserID, "admin_id", adminID)
	c.JSON(http.StatusCreated, dto.StatusRes{Success: true})
}

// UnbanUser lifts a user's active ban.
func (h *ChatHandler) UnbanUser(c *gin.Context) {
	var req dto.UnbanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusRes{Message: i18n.MsgBackendFailure})
		return
	}

	if err := h.chat.UnbanUser(c.Request.Context(), req.UserID); err != nil {
		status, message := chatFailure(err)
		slog.Warn("unban failed", "error", err, "user_id", req.UserID)
		c.JSON(status, dto.StatusRes{Message: message})
		return
	}
	slog.Info("user unbanned", "user_id", req.UserID)
	c.JSON(http.StatusOK, dto.StatusRes{Success: true})
}

// BannedUsers lists the active bans.
func (h *ChatHandler) BannedUsers(c *gin.Context) {
	bans, err := h.chat.BannedUsers(c.Request.Context())
	if err != nil {
		slog.Error("ban list lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.StatusRes{Message: i18n.MsgBackendFailure})
		return
	}

	out := make([]dto.BanRes, 0, len(bans))
	for _, b := range bans {
		out = append(out, dto.BanRes{
			ID:        b.ID,
			UserID:    b.UserID,
			BannedBy:  b.BannedBy,
			Reason:    b.Reason,
			BannedAt:  b.BannedAt,
			ExpiresAt: b.ExpiresAt,
		})
	}
	c.JSON(http.StatusOK, dto.BansRes{Success: true, Bans: out})
}

// toMessageRes renders messages for clients. Deleted rows keep their
// place in the history but the body is replaced by a placeholder.
func toMessageRes(msgs []*entity.Message) []dto.MessageRes {
	out := make([]dto.MessageRes, 0, len(msgs))
	for _, m := range msgs {
		body := m.Body
		if m.IsDeleted {
			body = i18n.MsgMessageRedacted
		}
		out = append(out, dto.MessageRes{
			ID:        m.ID,
			AuthorID:  m.AuthorID,
			Name:      m.DisplayName,
			Body:      body,
			AvatarURL: m.AvatarURL,
			IsAdmin:   m.IsAdmin,
			IsDeleted: m.IsDeleted,
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}

// chatFailure maps a chat error to an HTTP status and a localized
// message. Unknown errors collapse to a generic backend failure.
func chatFailure(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidMessage):
		return http.StatusBadRequest, i18n.MsgInvalidMessage
	case errors.Is(err, usecase.ErrUserBanned):
		return http.StatusForbidden, i18n.MsgUserBanned
	case errors.Is(err, usecase.ErrChatClosed):
		return http.StatusConflict, i18n.MsgChatClosed
	case errors.Is(err, usecase.ErrChatAlreadyOpen):
		return http.StatusConflict, i18n.MsgChatAlreadyOpen
	case errors.Is(err, usecase.ErrNoOpenChat):
		return http.StatusConflict, i18n.MsgNoOpenChat
	case errors.Is(err, usecase.ErrMessageNotFound):
		return http.StatusNotFound, i18n.MsgMessageNotFound
	case errors.Is(err, usecase.ErrAlreadyBanned):
		return http.StatusConflict, i18n.MsgAlreadyBanned
	case errors.Is(err, usecase.ErrBanNotFound):
		return http.StatusNotFound, i18n.MsgNotBanned
	default:
		return http.StatusInternalServerError, i18n.MsgBackendFailure
	}
}
