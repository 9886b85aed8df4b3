package usecases

import (
	"context"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/chat"
)

type GetHistoryQuery struct {
	UserID uint
}

type GetHistoryUseCase struct {
	messageRepo chat.MessageRepository
}

func NewGetHistoryUseCase(messageRepo chat.MessageRepository) *GetHistoryUseCase {
	return &GetHistoryUseCase{messageRepo: messageRepo}
}

func (uc *GetHistoryUseCase) Execute(ctx context.Context, query GetHistoryQuery) ([]*chat.Message, error) {
	return uc.messageRepo.ListByUserID(ctx, query.UserID)
}
