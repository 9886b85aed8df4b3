package usecases

import (
	"context"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/ticket"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/errors"
)

type GetTicketByCodeQuery struct {
	Code string
}

type GetTicketByCodeUseCase struct {
	ticketRepo ticket.TicketRepository
}

func NewGetTicketByCodeUseCase(ticketRepo ticket.TicketRepository) *GetTicketByCodeUseCase {
	return &GetTicketByCodeUseCase{ticketRepo: ticketRepo}
}

func (uc *GetTicketByCodeUseCase) Execute(ctx context.Context, query GetTicketByCodeQuery) (*ticket.Ticket, error) {
	if query.Code == "" {
		return nil, errors.NewValidationError("Ticket code is required")
	}

	found, err := uc.ticketRepo.FindByCode(ctx, query.Code)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("Ticket not found")
	}
	return found, nil
}
