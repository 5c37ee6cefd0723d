package posts

import (
	"time"

	"Snapgram/internal/core/comments"
)

// Post represents a post as stored in the database and returned to clients.
// Likes carries the ids of every user who liked the post, in like order;
// a user appears at most once. Comments are in creation order.
type Post struct {
	CreatedAt time.Time          `json:"createdAt"`
	Caption   string             `json:"caption,omitempty"`
	ImageURL  string             `json:"image,omitempty"`
	Author    *AuthorView        `json:"author,omitempty"`
	Likes     []int64            `json:"likes"`
	Comments  []comments.Comment `json:"comments"`
	ID        int64              `json:"id"`
	AuthorID  int64              `json:"authorId"`
}

// AuthorView is the minimal author info embedded in post views
type AuthorView struct {
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	ID             int64  `json:"id"`
}

// CreatePostRequest represents input for creating a new post.
// Image fields are empty when the post is caption-only.
type CreatePostRequest struct {
	Caption          string
	ImageName        string
	ImageContentType string
	ImageData        []byte
	AuthorID         int64
}

// LikeState is the updated like sub-resource returned after a like or
// unlike call. Count always equals len(Likes).
type LikeState struct {
	Likes []int64 `json:"likes"`
	Count int     `json:"count"`
}

// BookmarkState reports the post's membership in the caller's bookmark
// collection after a toggle.
type BookmarkState struct {
	Bookmarked bool `json:"bookmarked"`
}
