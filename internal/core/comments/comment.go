package comments

import "time"

// Comment represents a single comment on a post. Comments carry a
// back-reference to their post and are append-only from the client's
// perspective: order is creation order.
type Comment struct {
	CreatedAt time.Time   `json:"createdAt"`
	Text      string      `json:"text"`
	Author    *AuthorView `json:"author,omitempty"`
	ID        int64       `json:"id"`
	PostID    int64       `json:"postId"`
	AuthorID  int64       `json:"authorId"`
}

// AuthorView is the minimal commenter info embedded in comment views
type AuthorView struct {
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	ID             int64  `json:"id"`
}
