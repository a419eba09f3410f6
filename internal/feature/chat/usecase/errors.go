// Package usecase implements the moderation policy for the chat
// feature: every chat write passes through the guard chain here before
// it reaches the store.
package usecase

import "errors"

var (
	// ErrInvalidMessage is returned when the body is empty or exceeds
	// the length bound. No store call is made.
	ErrInvalidMessage = errors.New("message empty or too long")

	// ErrUserBanned is returned when an active ban blocks the author.
	ErrUserBanned = errors.New("user is banned")

	// ErrChatClosed is returned when a message is sent while no chat
	// session is open.
	ErrChatClosed = errors.New("chat is closed")

	// ErrChatAlreadyOpen is returned when opening while a session is
	// already open.
	ErrChatAlreadyOpen = errors.New("a chat session is already open")

	// ErrNoOpenChat is returned when closing while nothing is open.
	ErrNoOpenChat = errors.New("no open chat session")

	// ErrMessageNotFound is returned when the moderation target is
	// absent.
	ErrMessageNotFound = errors.New("message not found")

	// ErrAlreadyBanned is returned when banning a user with an active
	// ban.
	ErrAlreadyBanned = errors.New("user already has an active ban")

	// ErrBanNotFound is returned when no active ban matches.
	ErrBanNotFound = errors.New("no active ban found")
)
