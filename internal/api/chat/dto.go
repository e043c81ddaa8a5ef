package chat

import (
	"strings"

	"RuleChatbot/internal/entity"
)

const MaxSessionIDLength = 64

type ChatRequest struct {
	SessionID string `json:"session_id" validate:"omitempty,session_id"`
	Message   string `json:"message" validate:"required,max=1000"`
}

// Trim drops surrounding whitespace from the message before validation, so
// a blank message is rejected on every transport.
func (r *ChatRequest) Trim() {
	r.Message = strings.TrimSpace(r.Message)
}

type ChatResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Response  string `json:"response"`
	Intent    string `json:"intent,omitempty"`
	Score     int    `json:"score"`
}

type TranscriptResponse struct {
	SessionID string        `json:"session_id"`
	Turns     []entity.Turn `json:"turns"`
}

type NLPTestRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}

func (r *NLPTestRequest) Trim() {
	r.Text = strings.TrimSpace(r.Text)
}

type NLPTestResponse struct {
	Input      string           `json:"input"`
	Intent     string           `json:"intent"`
	Matched    bool             `json:"matched"`
	Score      int              `json:"score"`
	Response   string           `json:"response"`
	Scores     []IntentScore    `json:"scores"`
	Processing ProcessingDetail `json:"processing"`
}

type IntentScore struct {
	Intent string `json:"intent"`
	Score  int    `json:"score"`
}

type ProcessingDetail struct {
	Tokens         []string `json:"tokens"`
	ExpandedTokens []string `json:"expanded_tokens"`
	ProcessingTime string   `json:"processing_time"`
}

type IntentResponse struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Response string   `json:"response"`
}

// IsValidSessionID accepts 1 to MaxSessionIDLength ASCII letters, digits,
// dashes and underscores.
func IsValidSessionID(id string) bool {
	if id == "" || len(id) > MaxSessionIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
