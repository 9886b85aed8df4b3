package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/chat"
	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/persistence/mappers"
	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/persistence/models"
)

type ChatMessageRepository struct {
	db     *gorm.DB
	mapper mappers.ChatMessageMapper
}

func NewChatMessageRepository(db *gorm.DB) *ChatMessageRepository {
	return &ChatMessageRepository{
		db:     db,
		mapper: mappers.NewChatMessageMapper(),
	}
}

func (r *ChatMessageRepository) Save(ctx context.Context, msg *chat.Message) error {
	model := r.mapper.ToModel(msg)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}

	return msg.SetID(model.ID)
}

func (r *ChatMessageRepository) SetResponse(ctx context.Context, id uint, response string) error {
	result := r.db.WithContext(ctx).
		Model(&models.ChatMessageModel{}).
		Where("id = ?", id).
		Update("response", response)
	if result.Error != nil {
		return fmt.Errorf("failed to set chat response: %w", result.Error)
	}

	return nil
}

func (r *ChatMessageRepository) ListByUserID(ctx context.Context, userID uint) ([]*chat.Message, error) {
	var found []models.ChatMessageModel

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}

	messages := make([]*chat.Message, 0, len(found))
	for i := range found {
		msg, err := r.mapper.ToDomain(&found[i])
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, nil
}
