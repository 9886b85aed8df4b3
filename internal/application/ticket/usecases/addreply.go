package usecases

import (
	"context"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/ticket"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/errors"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/logger"
)

type AddReplyCommand struct {
	TicketID    uint
	UserID      uint
	Message     string
	IsFromAgent bool
}

type AddReplyUseCase struct {
	ticketRepo ticket.TicketRepository
	replyRepo  ticket.ReplyRepository
	logger     logger.Interface
}

func NewAddReplyUseCase(
	ticketRepo ticket.TicketRepository,
	replyRepo ticket.ReplyRepository,
	logger logger.Interface,
) *AddReplyUseCase {
	return &AddReplyUseCase{
		ticketRepo: ticketRepo,
		replyRepo:  replyRepo,
		logger:     logger,
	}
}

func (uc *AddReplyUseCase) Execute(ctx context.Context, cmd AddReplyCommand) (*ticket.Reply, error) {
	// Replies must reference an existing ticket.
	owning, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if owning == nil {
		return nil, errors.NewNotFoundError("Ticket not found")
	}

	reply, err := ticket.NewReply(cmd.TicketID, cmd.UserID, cmd.Message, cmd.IsFromAgent)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.replyRepo.Save(ctx, reply); err != nil {
		uc.logger.Errorw("failed to save reply", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.logger.Infow("reply added", "reply_id", reply.ID(), "ticket_id", cmd.TicketID)

	return reply, nil
}
