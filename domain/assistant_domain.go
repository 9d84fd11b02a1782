package domain

import (
	"errors"
)

var (
	MessageSuccessChatReply = "reply generated successfully"

	MessageFailedChatReply      = "failed to get response from AI"
	MessageFailedMessageMissing = "message is required"

	ErrChatMessageRequired = errors.New("message is required")
	ErrChatAPIKeyMissing   = errors.New("chat API key not configured")
	ErrChatUpstreamFailed  = errors.New("chat upstream request failed")
)

type (
	ChatMessage struct {
		Role    string `json:"role" validate:"required,oneof=user assistant"`
		Content string `json:"content" validate:"required"`
	}

	ChatRequest struct {
		Message             string        `json:"message" validate:"required"`
		ConversationHistory []ChatMessage `json:"conversation_history" validate:"omitempty,dive"`
	}

	ChatResponse struct {
		Reply string `json:"reply"`
	}
)
