package usecases

import (
	"context"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/ticket"
)

type ListRepliesQuery struct {
	TicketID uint
}

type ListRepliesUseCase struct {
	replyRepo ticket.ReplyRepository
}

func NewListRepliesUseCase(replyRepo ticket.ReplyRepository) *ListRepliesUseCase {
	return &ListRepliesUseCase{replyRepo: replyRepo}
}

func (uc *ListRepliesUseCase) Execute(ctx context.Context, query ListRepliesQuery) ([]*ticket.Reply, error) {
	return uc.replyRepo.ListByTicketID(ctx, query.TicketID)
}
