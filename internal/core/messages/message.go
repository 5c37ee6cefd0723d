package messages

import "time"

// Message is a direct message between two users.
type Message struct {
	CreatedAt  time.Time `json:"createdAt"`
	Body       string    `json:"body"`
	ID         int64     `json:"id"`
	SenderID   int64     `json:"senderId"`
	ReceiverID int64     `json:"receiverId"`
}
