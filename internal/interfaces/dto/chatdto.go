package dto

import (
	"time"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/chat"
)

type ChatMessageResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	Message   string    `json:"message"`
	Response  *string   `json:"response"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewChatMessageResponse(msg *chat.Message) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        msg.ID(),
		UserID:    msg.UserID(),
		Message:   msg.Text(),
		Response:  msg.Response(),
		CreatedAt: msg.CreatedAt(),
	}
}

func NewChatMessageResponses(messages []*chat.Message) []ChatMessageResponse {
	responses := make([]ChatMessageResponse, 0, len(messages))
	for _, msg := range messages {
		responses = append(responses, NewChatMessageResponse(msg))
	}
	return responses
}
