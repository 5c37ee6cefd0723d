package users

import "errors"

var (
	// ErrUserNotFound indicates the referenced user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrSelfFollow indicates a user tried to follow themselves
	ErrSelfFollow = errors.New("cannot follow yourself")
)
