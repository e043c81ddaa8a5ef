package chat

import "RuleChatbot/pkg/response"

var (
	ErrInvalidSessionID      = response.NewError(400, "invalid session id")
	ErrSessionNotFound       = response.NewError(404, "session not found")
	ErrTranscriptUnavailable = response.NewError(503, "transcript store unavailable")
)
