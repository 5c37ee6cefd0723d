package comments

import "context"

// Service defines the business logic interface for comments
type Service interface {
	// Add appends a comment to a post and returns it with author info.
	// Rejects empty/whitespace-only text with ErrEmptyText.
	Add(ctx context.Context, postID, authorID int64, text string) (*Comment, error)

	// ListForPost returns a post's comments in creation order.
	ListForPost(ctx context.Context, postID int64) ([]Comment, error)
}

// Repository defines the data access interface for comments
type Repository interface {
	// Create inserts the comment and fills id, timestamp and author view.
	// Returns ErrPostNotFound when the post doesn't exist.
	Create(ctx context.Context, comment *Comment) error

	// ListByPost returns comments in creation order.
	ListByPost(ctx context.Context, postID int64) ([]Comment, error)

	// GetPostAuthor returns the author id of the post, or ErrPostNotFound.
	GetPostAuthor(ctx context.Context, postID int64) (int64, error)
}
