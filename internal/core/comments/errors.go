package comments

import "errors"

var (
	// ErrPostNotFound indicates the post being commented on doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrEmptyText indicates the comment text is empty or whitespace-only
	ErrEmptyText = errors.New("comment text is required")

	// ErrTextTooLong indicates the comment text exceeds the length limit
	ErrTextTooLong = errors.New("comment text too long")
)
