package chat

import "context"

// MessageRepository persists chat messages.
type MessageRepository interface {
	Save(ctx context.Context, message *Message) error
	// SetResponse stores the generated answer for the given message.
	SetResponse(ctx context.Context, id uint, response string) error
	// ListByUserID returns a user's chat history in chronological order.
	ListByUserID(ctx context.Context, userID uint) ([]*Message, error)
}
