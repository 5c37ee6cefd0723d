package comments

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Snapgram/internal/events"
)

// MockCommentRepository is a mock implementation of Repository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID int64) ([]Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Comment), args.Error(1)
}

func (m *MockCommentRepository) GetPostAuthor(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

// MockProducer is a mock implementation of events.Producer
type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Emit(ctx context.Context, ev events.InteractionEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *MockProducer) Close() error {
	args := m.Called()
	return args.Error(0)
}

// TestAdd_Success tests adding a comment to someone else's post
func TestAdd_Success(t *testing.T) {
	mockRepo := new(MockCommentRepository)
	mockProducer := new(MockProducer)

	mockRepo.On("GetPostAuthor", mock.Anything, int64(10)).Return(int64(1), nil)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *Comment) bool {
		return c.PostID == 10 && c.AuthorID == 2 && c.Text == "nice shot"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*Comment).ID = 100
	}).Return(nil)
	mockProducer.On("Emit", mock.Anything, mock.MatchedBy(func(ev events.InteractionEvent) bool {
		return ev.Kind == events.KindComment &&
			ev.ActorID == 2 &&
			ev.TargetUserID == 1 &&
			ev.PostID == 10 &&
			ev.CommentText == "nice shot"
	})).Return(nil)

	service := NewCommentService(mockRepo, mockProducer, nil)

	comment, err := service.Add(context.Background(), 10, 2, "nice shot")
	require.NoError(t, err)
	assert.Equal(t, int64(100), comment.ID)
	assert.Equal(t, "nice shot", comment.Text)

	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

// TestAdd_TrimsWhitespace tests that surrounding whitespace is stripped
func TestAdd_TrimsWhitespace(t *testing.T) {
	mockRepo := new(MockCommentRepository)

	mockRepo.On("GetPostAuthor", mock.Anything, int64(10)).Return(int64(1), nil)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *Comment) bool {
		return c.Text == "hello"
	})).Return(nil)

	service := NewCommentService(mockRepo, nil, nil)

	comment, err := service.Add(context.Background(), 10, 2, "  hello  ")
	require.NoError(t, err)
	assert.Equal(t, "hello", comment.Text)
}

// TestAdd_EmptyText tests that whitespace-only comments are rejected
func TestAdd_EmptyText(t *testing.T) {
	mockRepo := new(MockCommentRepository)

	service := NewCommentService(mockRepo, nil, nil)

	_, err := service.Add(context.Background(), 10, 2, "   ")
	assert.ErrorIs(t, err, ErrEmptyText)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestAdd_TooLong tests the comment length limit
func TestAdd_TooLong(t *testing.T) {
	mockRepo := new(MockCommentRepository)

	service := NewCommentService(mockRepo, nil, nil)

	_, err := service.Add(context.Background(), 10, 2, strings.Repeat("a", maxCommentLength+1))
	assert.ErrorIs(t, err, ErrTextTooLong)
}

// TestAdd_PostNotFound tests commenting on a missing post
func TestAdd_PostNotFound(t *testing.T) {
	mockRepo := new(MockCommentRepository)

	mockRepo.On("GetPostAuthor", mock.Anything, int64(99)).Return(int64(0), ErrPostNotFound)

	service := NewCommentService(mockRepo, nil, nil)

	_, err := service.Add(context.Background(), 99, 2, "hello")
	assert.ErrorIs(t, err, ErrPostNotFound)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestAdd_OwnPostNoEvent tests that commenting on your own post emits
// no notification event
func TestAdd_OwnPostNoEvent(t *testing.T) {
	mockRepo := new(MockCommentRepository)
	mockProducer := new(MockProducer)

	mockRepo.On("GetPostAuthor", mock.Anything, int64(10)).Return(int64(2), nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewCommentService(mockRepo, mockProducer, nil)

	_, err := service.Add(context.Background(), 10, 2, "self reply")
	require.NoError(t, err)

	mockProducer.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
}

// TestListForPost tests listing comments in creation order
func TestListForPost(t *testing.T) {
	mockRepo := new(MockCommentRepository)

	expected := []Comment{
		{ID: 1, PostID: 10, Text: "first"},
		{ID: 2, PostID: 10, Text: "second"},
	}
	mockRepo.On("ListByPost", mock.Anything, int64(10)).Return(expected, nil)

	service := NewCommentService(mockRepo, nil, nil)

	comments, err := service.ListForPost(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "second", comments[1].Text)
}
