package usecases

import (
	"context"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/ticket"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*ticket.Ticket, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*ticket.Ticket, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*ticket.Ticket, error)
}

type GetTicketByCodeExecutor interface {
	Execute(ctx context.Context, query GetTicketByCodeQuery) (*ticket.Ticket, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]*ticket.Ticket, error)
}

type AddReplyExecutor interface {
	Execute(ctx context.Context, cmd AddReplyCommand) (*ticket.Reply, error)
}

type ListRepliesExecutor interface {
	Execute(ctx context.Context, query ListRepliesQuery) ([]*ticket.Reply, error)
}
