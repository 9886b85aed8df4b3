package usecases

import (
	"context"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/ticket"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/errors"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
}

func NewGetTicketUseCase(ticketRepo ticket.TicketRepository) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*ticket.Ticket, error) {
	found, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("Ticket not found")
	}
	return found, nil
}
