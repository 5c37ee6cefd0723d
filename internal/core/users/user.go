package users

import "time"

// User represents a user profile. Following and Followers carry unique
// user ids in insertion order; they are mutated only by the follow toggle,
// never by post operations.
type User struct {
	CreatedAt      time.Time `json:"createdAt"`
	Username       string    `json:"username"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	Following      []int64   `json:"following"`
	Followers      []int64   `json:"followers"`
	Bookmarks      []int64   `json:"bookmarks"`
	ID             int64     `json:"id"`
}

// FollowState reports the relationship after a follow toggle.
type FollowState struct {
	Following bool `json:"following"`
}
