package posts

import "context"

// Service defines the business logic interface for posts.
// Covers creation (composer submit), the feed reads, and every
// post-scoped interaction: like, unlike, bookmark, delete.
type Service interface {
	// Create validates and persists a new post. The image, when present,
	// is uploaded to media storage first and the returned URL is stored
	// on the post. Fails with a ValidationError when both caption and
	// image are empty.
	Create(ctx context.Context, req CreatePostRequest) (*Post, error)

	// Feed returns posts most-recent-first with author, likes and comments.
	Feed(ctx context.Context, limit int) ([]*Post, error)

	// AuthorPosts returns the given author's posts, most-recent-first.
	AuthorPosts(ctx context.Context, authorID int64) ([]*Post, error)

	// Like adds userID to the post's like set. Idempotent with respect to
	// membership: liking an already-liked post changes nothing.
	Like(ctx context.Context, postID, userID int64) (*LikeState, error)

	// Unlike removes userID from the post's like set. Unliking a post the
	// user never liked is a success no-op.
	Unlike(ctx context.Context, postID, userID int64) (*LikeState, error)

	// Bookmark toggles the post's presence in the user's bookmark
	// collection. The post row itself is untouched.
	Bookmark(ctx context.Context, postID, userID int64) (*BookmarkState, error)

	// Delete removes a post and cascades its comments, likes and
	// bookmarks. Fails with ErrNotAuthorized unless userID is the author,
	// and with ErrNotFound once the post is gone.
	Delete(ctx context.Context, postID, userID int64) error
}

// Repository defines the data access interface for posts.
// Membership mutations (like, unlike, bookmark) must be single atomic
// storage statements, never read-modify-write.
type Repository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	ListRecent(ctx context.Context, limit int) ([]*Post, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]*Post, error)

	// Like inserts (postID, userID) into the like set if absent and
	// returns the resulting like list plus whether a row was actually
	// inserted, so callers can tell a real NotLiked -> Liked transition
	// from a repeat. ErrNotFound if the post is absent.
	Like(ctx context.Context, postID, userID int64) ([]int64, bool, error)

	// Unlike removes (postID, userID) from the like set if present and
	// returns the resulting like list. ErrNotFound if the post is absent.
	Unlike(ctx context.Context, postID, userID int64) ([]int64, error)

	// ToggleBookmark flips (userID, postID) in the bookmarks set and
	// reports whether the post is now bookmarked.
	ToggleBookmark(ctx context.Context, postID, userID int64) (bool, error)

	// Delete removes the post and all dependent rows atomically.
	Delete(ctx context.Context, id int64) error
}
