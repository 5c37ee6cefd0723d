package notifications

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"Snapgram/internal/events"
)

// Service materializes interaction events into notification feeds and
// serves reads.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a notification service
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Record converts an interaction event into a stored notification.
// Wired as the events.Consumer handler.
func (s *Service) Record(ctx context.Context, ev events.InteractionEvent) error {
	n := Notification{
		ID:        uuid.NewString(),
		UserID:    ev.TargetUserID,
		ActorID:   ev.ActorID,
		Kind:      string(ev.Kind),
		PostID:    ev.PostID,
		Text:      ev.CommentText,
		CreatedAt: ev.OccurredAt,
	}
	if err := s.repo.Push(ctx, n); err != nil {
		return fmt.Errorf("failed to record %s notification for user %d: %w", n.Kind, n.UserID, err)
	}

	s.logger.Debug("notification recorded", "kind", n.Kind, "user", n.UserID)
	return nil
}

// List returns the user's most recent notifications.
func (s *Service) List(ctx context.Context, userID int64, limit int64) ([]Notification, error) {
	return s.repo.List(ctx, userID, limit)
}
