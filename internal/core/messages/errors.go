package messages

import "errors"

var (
	// ErrEmptyBody indicates the message body is empty or whitespace-only
	ErrEmptyBody = errors.New("message body is required")

	// ErrBodyTooLong indicates the message body exceeds the length limit
	ErrBodyTooLong = errors.New("message body too long")

	// ErrReceiverNotFound indicates the receiving user doesn't exist
	ErrReceiverNotFound = errors.New("receiver not found")
)
