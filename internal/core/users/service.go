package users

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"Snapgram/internal/events"
)

type userService struct {
	repo     UserRepository
	producer events.Producer
	logger   *slog.Logger
}

// NewUserService creates a new user service.
// producer can be nil; then follow transitions emit no events.
func NewUserService(repo UserRepository, producer events.Producer, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{repo: repo, producer: producer, logger: logger}
}

func (s *userService) Profile(ctx context.Context, userID int64) (*User, error) {
	return s.repo.GetByID(ctx, userID)
}

// FollowOrUnfollow toggles the relationship. Only the follow transition
// notifies the target; unfollowing is silent.
func (s *userService) FollowOrUnfollow(ctx context.Context, followerID, targetID int64) (*FollowState, error) {
	if followerID == targetID {
		return nil, ErrSelfFollow
	}

	following, err := s.repo.ToggleFollow(ctx, followerID, targetID)
	if err != nil {
		if err == ErrUserNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to toggle follow: %w", err)
	}

	s.logger.Info("follow toggled",
		"follower", followerID,
		"target", targetID,
		"following", following)

	if following && s.producer != nil {
		ev := events.InteractionEvent{
			Kind:         events.KindFollow,
			ActorID:      followerID,
			TargetUserID: targetID,
			OccurredAt:   time.Now().UTC(),
		}
		if err := s.producer.Emit(ctx, ev); err != nil {
			s.logger.Warn("failed to emit follow event", "target", targetID, "error", err)
		}
	}

	return &FollowState{Following: following}, nil
}

func (s *userService) Suggested(ctx context.Context, viewerID int64, limit int) ([]*User, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.ListSuggested(ctx, viewerID, limit)
}
