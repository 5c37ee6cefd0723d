package comments

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"Snapgram/internal/events"
)

const maxCommentLength = 1000

type commentService struct {
	repo     Repository
	producer events.Producer
	logger   *slog.Logger
}

// NewCommentService creates a new comment service.
// producer can be nil; then no notification events are emitted.
func NewCommentService(repo Repository, producer events.Producer, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{repo: repo, producer: producer, logger: logger}
}

// Add validates and appends a comment. The post author gets a
// notification event unless they commented on their own post.
func (s *commentService) Add(ctx context.Context, postID, authorID int64, text string) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if len(text) > maxCommentLength {
		return nil, ErrTextTooLong
	}

	postAuthor, err := s.repo.GetPostAuthor(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if postAuthor != authorID && s.producer != nil {
		ev := events.InteractionEvent{
			Kind:         events.KindComment,
			ActorID:      authorID,
			TargetUserID: postAuthor,
			PostID:       postID,
			CommentText:  text,
			OccurredAt:   time.Now().UTC(),
		}
		if err := s.producer.Emit(ctx, ev); err != nil {
			s.logger.Warn("failed to emit comment event", "post", postID, "error", err)
		}
	}

	return comment, nil
}

func (s *commentService) ListForPost(ctx context.Context, postID int64) ([]Comment, error) {
	return s.repo.ListByPost(ctx, postID)
}
