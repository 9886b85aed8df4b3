package ticket

import "context"

// TicketRepository persists tickets. Find methods return (nil, nil) when the
// record is absent; absence is not an error at this layer.
type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	FindByCode(ctx context.Context, code string) (*Ticket, error)
	// List returns tickets newest-first by creation time.
	List(ctx context.Context, filter Filter) ([]*Ticket, error)
}

// Filter narrows ticket listings.
type Filter struct {
	UserID *uint
}

// ReplyRepository persists ticket replies.
type ReplyRepository interface {
	Save(ctx context.Context, reply *Reply) error
	// ListByTicketID returns replies in chronological order.
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Reply, error)
}

// CodeGenerator allocates human-facing ticket codes (TK001, TK002, ...)
// in a strictly increasing sequence for the process lifetime.
type CodeGenerator interface {
	Next(ctx context.Context) (string, error)
}
