package usecases

import (
	"context"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/chat"
)

type SendMessageExecutor interface {
	Execute(ctx context.Context, cmd SendMessageCommand) (*chat.Message, error)
}

type GetHistoryExecutor interface {
	Execute(ctx context.Context, query GetHistoryQuery) ([]*chat.Message, error)
}
