package mappers

import (
	"time"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/chat"
	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/persistence/models"
)

type ChatMessageMapper struct{}

func NewChatMessageMapper() ChatMessageMapper {
	return ChatMessageMapper{}
}

func (m ChatMessageMapper) ToModel(msg *chat.Message) *models.ChatMessageModel {
	return &models.ChatMessageModel{
		ID:        msg.ID(),
		UserID:    msg.UserID(),
		Message:   msg.Text(),
		Response:  msg.Response(),
		CreatedAt: msg.CreatedAt().UnixMilli(),
	}
}

func (m ChatMessageMapper) ToDomain(model *models.ChatMessageModel) (*chat.Message, error) {
	return chat.ReconstructMessage(
		model.ID,
		model.UserID,
		model.Message,
		model.Response,
		time.UnixMilli(model.CreatedAt),
	)
}
