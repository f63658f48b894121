package chatting

import "errors"

var (
	ErrEmptyMessage       = errors.New("message is empty")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidAnchor      = errors.New("anchor does not point to a user message")
	ErrAlreadyAnswered    = errors.New("message already has a reply")
	ErrHistoryUnavailable = errors.New("history store unavailable")
)
