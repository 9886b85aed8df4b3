package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/ticket"
)

type ReplyRepository struct {
	mu      sync.RWMutex
	replies map[uint]*ticket.Reply
	nextID  uint
}

func NewReplyRepository() *ReplyRepository {
	return &ReplyRepository{
		replies: make(map[uint]*ticket.Reply),
		nextID:  1,
	}
}

func (r *ReplyRepository) Save(ctx context.Context, reply *ticket.Reply) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := reply.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.replies[reply.ID()] = reply

	return nil
}

func (r *ReplyRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Reply, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	replies := make([]*ticket.Reply, 0)
	for _, reply := range r.replies {
		if reply.TicketID() == ticketID {
			replies = append(replies, reply)
		}
	}

	sort.Slice(replies, func(i, j int) bool {
		if replies[i].CreatedAt().Equal(replies[j].CreatedAt()) {
			return replies[i].ID() < replies[j].ID()
		}
		return replies[i].CreatedAt().Before(replies[j].CreatedAt())
	})

	return replies, nil
}
