package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/ticket"
)

type TicketRepository struct {
	mu      sync.RWMutex
	tickets map[uint]*ticket.Ticket
	nextID  uint
}

func NewTicketRepository() *TicketRepository {
	return &TicketRepository{
		tickets: make(map[uint]*ticket.Ticket),
		nextID:  1,
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.tickets {
		if existing.Code() == t.Code() {
			return fmt.Errorf("ticket code already exists: %s", t.Code())
		}
	}

	if err := t.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.tickets[t.ID()] = t

	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tickets[t.ID()]; !ok {
		return fmt.Errorf("ticket not found: %d", t.ID())
	}
	r.tickets[t.ID()] = t

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tickets[id]
	if !ok {
		return nil, nil
	}
	return t, nil
}

func (r *TicketRepository) FindByCode(ctx context.Context, code string) (*ticket.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tickets {
		if t.Code() == code {
			return t, nil
		}
	}
	return nil, nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tickets := make([]*ticket.Ticket, 0, len(r.tickets))
	for _, t := range r.tickets {
		if filter.UserID != nil && t.UserID() != *filter.UserID {
			continue
		}
		tickets = append(tickets, t)
	}

	// Newest first; IDs break ties for tickets created in the same instant.
	sort.Slice(tickets, func(i, j int) bool {
		if tickets[i].CreatedAt().Equal(tickets[j].CreatedAt()) {
			return tickets[i].ID() > tickets[j].ID()
		}
		return tickets[i].CreatedAt().After(tickets[j].CreatedAt())
	})

	return tickets, nil
}
