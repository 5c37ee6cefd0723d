package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Snapgram/internal/events"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Push(ctx context.Context, n Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context, userID int64, limit int64) ([]Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Notification), args.Error(1)
}

// TestRecord_CommentEvent tests that a comment event becomes a
// notification carrying the comment text
func TestRecord_CommentEvent(t *testing.T) {
	mockRepo := new(MockRepository)

	occurred := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mockRepo.On("Push", mock.Anything, mock.MatchedBy(func(n Notification) bool {
		return n.UserID == 1 &&
			n.ActorID == 2 &&
			n.Kind == "comment" &&
			n.PostID == 10 &&
			n.Text == "great one" &&
			n.CreatedAt.Equal(occurred) &&
			n.ID != ""
	})).Return(nil)

	service := NewService(mockRepo, nil)

	err := service.Record(context.Background(), events.InteractionEvent{
		Kind:         events.KindComment,
		ActorID:      2,
		TargetUserID: 1,
		PostID:       10,
		CommentText:  "great one",
		OccurredAt:   occurred,
	})
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

// TestRecord_RepoError tests that storage failures surface to the
// consumer for logging
func TestRecord_RepoError(t *testing.T) {
	mockRepo := new(MockRepository)

	mockRepo.On("Push", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	service := NewService(mockRepo, nil)

	err := service.Record(context.Background(), events.InteractionEvent{
		Kind:         events.KindFollow,
		ActorID:      2,
		TargetUserID: 1,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record follow notification")
}

// TestList tests reading the feed through the service
func TestList(t *testing.T) {
	mockRepo := new(MockRepository)

	expected := []Notification{{ID: "a", UserID: 1, Kind: "like"}}
	mockRepo.On("List", mock.Anything, int64(1), int64(20)).Return(expected, nil)

	service := NewService(mockRepo, nil)

	got, err := service.List(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "like", got[0].Kind)
}
