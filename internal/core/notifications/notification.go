package notifications

import "time"

// Notification is a single entry in a user's notification feed,
// materialized from interaction events.
type Notification struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	Kind      string    `json:"kind"` // "like", "comment" or "follow"
	Text      string    `json:"text,omitempty"`
	UserID    int64     `json:"userId"`
	ActorID   int64     `json:"actorId"`
	PostID    int64     `json:"postId,omitempty"`
}
