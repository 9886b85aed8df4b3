package usecases

import (
	"context"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/ticket"
)

// ListTicketsQuery selects either every ticket (admin triage view) or a
// single owner's tickets.
type ListTicketsQuery struct {
	UserID *uint
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*ticket.Ticket, error) {
	return uc.ticketRepo.List(ctx, ticket.Filter{UserID: query.UserID})
}
