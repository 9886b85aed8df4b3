package ticket

import (
	"fmt"
	"time"
)

// Reply is a single message in a ticket's conversation thread.
type Reply struct {
	id          uint
	ticketID    uint
	userID      uint
	message     string
	isFromAgent bool
	createdAt   time.Time
}

func NewReply(ticketID, userID uint, message string, isFromAgent bool) (*Reply, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > 10000 {
		return nil, fmt.Errorf("message exceeds maximum length of 10000 characters")
	}

	return &Reply{
		ticketID:    ticketID,
		userID:      userID,
		message:     message,
		isFromAgent: isFromAgent,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructReply(
	id uint,
	ticketID uint,
	userID uint,
	message string,
	isFromAgent bool,
	createdAt time.Time,
) (*Reply, error) {
	if id == 0 {
		return nil, fmt.Errorf("reply ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Reply{
		id:          id,
		ticketID:    ticketID,
		userID:      userID,
		message:     message,
		isFromAgent: isFromAgent,
		createdAt:   createdAt,
	}, nil
}

func (r *Reply) ID() uint {
	return r.id
}

func (r *Reply) TicketID() uint {
	return r.ticketID
}

func (r *Reply) UserID() uint {
	return r.userID
}

func (r *Reply) Message() string {
	return r.message
}

func (r *Reply) IsFromAgent() bool {
	return r.isFromAgent
}

func (r *Reply) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Reply) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("reply ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("reply ID cannot be zero")
	}
	r.id = id
	return nil
}
