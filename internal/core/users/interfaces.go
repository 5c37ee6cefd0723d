package users

import "context"

// Service defines the business logic interface for users and the
// follow relationship.
type Service interface {
	// Profile returns the user with follower/following/bookmark id lists.
	Profile(ctx context.Context, userID int64) (*User, error)

	// FollowOrUnfollow performs exactly one transition per call between
	// NotFollowing and Following for the (follower, target) pair and
	// reports the resulting state. Fails with ErrSelfFollow when
	// followerID == targetID.
	FollowOrUnfollow(ctx context.Context, followerID, targetID int64) (*FollowState, error)

	// Suggested returns users the viewer doesn't follow yet.
	Suggested(ctx context.Context, viewerID int64, limit int) ([]*User, error)
}

// UserRepository defines the data access interface for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*User, error)

	// ToggleFollow atomically flips the (follower, target) relationship:
	// the unfollow half is a keyed delete, the follow half an
	// insert-if-absent, both inside one transaction so a call can never
	// toggle twice. Returns whether the follower now follows the target.
	// ErrUserNotFound when the target doesn't exist.
	ToggleFollow(ctx context.Context, followerID, targetID int64) (bool, error)

	// ListSuggested returns users the viewer doesn't follow, newest first.
	ListSuggested(ctx context.Context, viewerID int64, limit int) ([]*User, error)
}
