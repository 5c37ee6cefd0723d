package posts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"Snapgram/internal/core/media"
	"Snapgram/internal/events"
)

const maxCaptionLength = 2200

type postService struct {
	repo     Repository
	media    media.Store
	producer events.Producer
	logger   *slog.Logger
}

// NewPostService creates a new post service.
// mediaStore and producer can be nil if not needed (e.g., in tests or minimal setups):
// without mediaStore, image uploads are rejected; without producer, no
// interaction events are emitted.
func NewPostService(
	repo Repository,
	mediaStore media.Store, // Optional: can be nil
	producer events.Producer, // Optional: can be nil
	logger *slog.Logger,
) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:     repo,
		media:    mediaStore,
		producer: producer,
		logger:   logger,
	}
}

// Create validates the composer submit, uploads the image when present and
// persists the post.
func (s *postService) Create(ctx context.Context, req CreatePostRequest) (*Post, error) {
	caption := strings.TrimSpace(req.Caption)
	hasImage := len(req.ImageData) > 0

	if caption == "" && !hasImage {
		return nil, NewValidationError("caption", "post needs a caption or an image")
	}
	if len(caption) > maxCaptionLength {
		return nil, NewValidationError("caption",
			fmt.Sprintf("caption too long (max %d characters)", maxCaptionLength))
	}
	if req.AuthorID == 0 {
		return nil, NewValidationError("authorId", "authorId must be set from the authenticated user")
	}

	var imageURL string
	if hasImage {
		if s.media == nil {
			return nil, NewValidationError("image", "image uploads are not enabled")
		}
		url, err := s.media.Upload(ctx, req.ImageName, req.ImageContentType, req.ImageData)
		if err != nil {
			return nil, fmt.Errorf("failed to store post image: %w", err)
		}
		imageURL = url
	}

	post := &Post{
		AuthorID: req.AuthorID,
		Caption:  caption,
		ImageURL: imageURL,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	// Re-read so the response carries the author view and empty
	// likes/comments the same way feed entries do.
	created, err := s.repo.GetByID(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created post: %w", err)
	}

	s.logger.Info("post created",
		"post", created.ID,
		"author", created.AuthorID,
		"has_image", hasImage)

	return created, nil
}

func (s *postService) Feed(ctx context.Context, limit int) ([]*Post, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.ListRecent(ctx, limit)
}

func (s *postService) AuthorPosts(ctx context.Context, authorID int64) ([]*Post, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}

// Like adds the user to the post's like set. The storage layer enforces
// set semantics, so a repeated like leaves the cardinality unchanged and
// emits no event: only a real NotLiked -> Liked transition notifies.
func (s *postService) Like(ctx context.Context, postID, userID int64) (*LikeState, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	likes, inserted, err := s.repo.Like(ctx, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to like post: %w", err)
	}

	if inserted && post.AuthorID != userID {
		s.emit(ctx, events.InteractionEvent{
			Kind:         events.KindLike,
			ActorID:      userID,
			TargetUserID: post.AuthorID,
			PostID:       postID,
			OccurredAt:   time.Now().UTC(),
		})
	}

	return &LikeState{Likes: likes, Count: len(likes)}, nil
}

// Unlike removes the user from the post's like set. A no-op when the user
// never liked the post; still reports success with the current state.
func (s *postService) Unlike(ctx context.Context, postID, userID int64) (*LikeState, error) {
	likes, err := s.repo.Unlike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	return &LikeState{Likes: likes, Count: len(likes)}, nil
}

func (s *postService) Bookmark(ctx context.Context, postID, userID int64) (*BookmarkState, error) {
	bookmarked, err := s.repo.ToggleBookmark(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	return &BookmarkState{Bookmarked: bookmarked}, nil
}

func (s *postService) Delete(ctx context.Context, postID, userID int64) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return ErrNotAuthorized
	}

	if err := s.repo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.logger.Info("post deleted", "post", postID, "author", userID)
	return nil
}

// emit publishes an interaction event, best effort. Notification delivery
// must never fail the interaction itself.
func (s *postService) emit(ctx context.Context, ev events.InteractionEvent) {
	if s.producer == nil {
		return
	}
	if err := s.producer.Emit(ctx, ev); err != nil {
		s.logger.Warn("failed to emit interaction event",
			"kind", ev.Kind,
			"post", ev.PostID,
			"error", err)
	}
}
