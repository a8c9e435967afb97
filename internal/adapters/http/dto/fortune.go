package dto

import (
	"time"

	"github.com/jsamuelsen/fortune-service/internal/domain"
)

// MsgNoFortunes is reported when a random fortune is requested from an
// empty store.
const MsgNoFortunes = "No fortunes found"

// CreateFortuneRequest is the body of POST /api/fortune, sent either as
// JSON ({"fortune": "..."}) or as a form field.
type CreateFortuneRequest struct {
	Fortune string `json:"fortune" form:"fortune" label:"text" validate:"notblank"`
}

// Fortune is the serialized form of a stored fortune.
type Fortune struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FortuneResponse wraps a fortune: {"fortune": {...}}.
type FortuneResponse struct {
	Fortune Fortune `json:"fortune"`
}

// MessagesResponse carries user-facing messages: {"error": ["..."]}.
type MessagesResponse struct {
	Error []string `json:"error"`
}

// NewFortuneResponse converts a domain fortune to its response payload.
func NewFortuneResponse(f *domain.Fortune) *FortuneResponse {
	return &FortuneResponse{
		Fortune: Fortune{
			ID:        f.ID,
			Text:      f.Text,
			CreatedAt: f.CreatedAt,
			UpdatedAt: f.UpdatedAt,
		},
	}
}

// NewMessagesResponse builds an {"error": [...]} payload.
func NewMessagesResponse(msgs ...string) *MessagesResponse {
	if msgs == nil {
		msgs = []string{}
	}

	return &MessagesResponse{Error: msgs}
}
