package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/chat"
)

type ChatMessageRepository struct {
	mu       sync.RWMutex
	messages map[uint]*chat.Message
	nextID   uint
}

func NewChatMessageRepository() *ChatMessageRepository {
	return &ChatMessageRepository{
		messages: make(map[uint]*chat.Message),
		nextID:   1,
	}
}

func (r *ChatMessageRepository) Save(ctx context.Context, msg *chat.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := msg.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.messages[msg.ID()] = msg

	return nil
}

func (r *ChatMessageRepository) SetResponse(ctx context.Context, id uint, response string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg, ok := r.messages[id]
	if !ok {
		return fmt.Errorf("chat message not found: %d", id)
	}
	if msg.Response() == nil {
		return msg.SetResponse(response)
	}
	return nil
}

func (r *ChatMessageRepository) ListByUserID(ctx context.Context, userID uint) ([]*chat.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make([]*chat.Message, 0)
	for _, msg := range r.messages {
		if msg.UserID() == userID {
			messages = append(messages, msg)
		}
	}

	sort.Slice(messages, func(i, j int) bool {
		if messages[i].CreatedAt().Equal(messages[j].CreatedAt()) {
			return messages[i].ID() < messages[j].ID()
		}
		return messages[i].CreatedAt().Before(messages[j].CreatedAt())
	})

	return messages, nil
}
