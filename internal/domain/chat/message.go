package chat

import (
	"fmt"
	"time"
)

// Message is a single question sent to the support assistant, together with
// the assistant's answer once one has been generated.
type Message struct {
	id        uint
	userID    uint
	message   string
	response  *string
	createdAt time.Time
}

func NewMessage(userID uint, message string) (*Message, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > 2000 {
		return nil, fmt.Errorf("message exceeds maximum length of 2000 characters")
	}

	return &Message{
		userID:    userID,
		message:   message,
		createdAt: time.Now(),
	}, nil
}

func ReconstructMessage(
	id uint,
	userID uint,
	message string,
	response *string,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Message{
		id:        id,
		userID:    userID,
		message:   message,
		response:  response,
		createdAt: createdAt,
	}, nil
}

func (m *Message) ID() uint {
	return m.id
}

func (m *Message) UserID() uint {
	return m.userID
}

func (m *Message) Text() string {
	return m.message
}

func (m *Message) Response() *string {
	return m.response
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}

// SetResponse records the assistant's answer. The response is write-once;
// it is never overwritten after first assignment.
func (m *Message) SetResponse(response string) error {
	if m.response != nil {
		return fmt.Errorf("response is already set")
	}
	if len(response) == 0 {
		return fmt.Errorf("response cannot be empty")
	}
	m.response = &response
	return nil
}
