package events

import (
	"context"
	"time"
)

// Kind identifies the interaction that produced an event.
type Kind string

const (
	KindLike    Kind = "like"
	KindComment Kind = "comment"
	KindFollow  Kind = "follow"
)

// InteractionEvent is published whenever a user likes a post, comments on
// a post, or follows another user. The unlike/unfollow halves of the
// toggles do not emit events, and neither do self-interactions.
type InteractionEvent struct {
	OccurredAt   time.Time `json:"occurredAt"`
	Kind         Kind      `json:"kind"`
	CommentText  string    `json:"commentText,omitempty"`
	ActorID      int64     `json:"actorId"`
	TargetUserID int64     `json:"targetUserId"`
	PostID       int64     `json:"postId,omitempty"`
}

// Producer publishes interaction events to the message broker.
type Producer interface {
	Emit(ctx context.Context, ev InteractionEvent) error
	Close() error
}
