package messages

import "context"

// Service defines the business logic interface for direct messages
type Service interface {
	// Send persists a message and returns it. ErrEmptyBody on blank text,
	// ErrReceiverNotFound on an unknown receiver.
	Send(ctx context.Context, senderID, receiverID int64, body string) (*Message, error)

	// Conversation returns all messages between the two users in
	// creation order.
	Conversation(ctx context.Context, userID, otherID int64) ([]Message, error)
}

// Repository defines the data access interface for messages
type Repository interface {
	// Create inserts the message and fills id and timestamp.
	// Returns ErrReceiverNotFound when the receiver doesn't exist.
	Create(ctx context.Context, msg *Message) error

	// ListBetween returns messages exchanged between the two users in
	// creation order, regardless of direction.
	ListBetween(ctx context.Context, userID, otherID int64) ([]Message, error)
}
