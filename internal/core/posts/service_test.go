package posts

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

// MockPostRepository is a mock implementation of Repository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id int64) (*Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockPostRepository) ListRecent(ctx context.Context, limit int) ([]*Post, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
}

func (m *MockPostRepository) ListByAuthor(ctx context.Context, authorID int64) ([]*Post, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
}

func (m *MockPostRepository) Like(ctx context.Context, postID, userID int64) ([]int64, bool, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]int64), args.Bool(1), args.Error(2)
}

func (m *MockPostRepository) Unlike(ctx context.Context, postID, userID int64) ([]int64, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockPostRepository) ToggleBookmark(ctx context.Context, postID, userID int64) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMediaStore is a mock implementation of media.Store
type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, filename, contentType, data)
	return args.String(0), args.Error(1)
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

// TestCreate_CaptionOnly tests creating a post with a caption and no image
func TestCreate_CaptionOnly(t *testing.T) {
	mockRepo := new(MockPostRepository)

	created := &Post{
		ID:        1,
		AuthorID:  7,
		Caption:   "sunset",
		Likes:     []int64{},
		Comments:  nil,
		CreatedAt: time.Now(),
	}

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.AuthorID == 7 && p.Caption == "sunset" && p.ImageURL == ""
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*Post).ID = 1
	}).Return(nil)
	mockRepo.On("GetByID", mock.Anything, int64(1)).Return(created, nil)

	service := NewPostService(mockRepo, nil, nil, nil)

	post, err := service.Create(context.Background(), CreatePostRequest{
		Caption:  "sunset",
		AuthorID: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), post.ID)
	assert.Equal(t, "sunset", post.Caption)

	mockRepo.AssertExpectations(t)
}

// TestCreate_EmptyCaptionAndImage tests that a fully empty post is rejected
func TestCreate_EmptyCaptionAndImage(t *testing.T) {
	mockRepo := new(MockPostRepository)

	service := NewPostService(mockRepo, nil, nil, nil)

	_, err := service.Create(context.Background(), CreatePostRequest{
		Caption:  "   ",
		AuthorID: 7,
	})
	assert.True(t, IsValidationError(err), "expected ValidationError, got %v", err)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestCreate_WithImage tests that the image is uploaded before the post
// row is written and the returned URL lands on the post
func TestCreate_WithImage(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockMedia := new(MockMediaStore)

	imageData := []byte{0xFF, 0xD8, 0xFF}
	mockMedia.On("Upload", mock.Anything, "cat.jpg", "image/jpeg", imageData).
		Return("https://cdn.example.com/abc.jpg", nil)

	created := &Post{ID: 2, AuthorID: 7, ImageURL: "https://cdn.example.com/abc.jpg", Likes: []int64{}}
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.ImageURL == "https://cdn.example.com/abc.jpg"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*Post).ID = 2
	}).Return(nil)
	mockRepo.On("GetByID", mock.Anything, int64(2)).Return(created, nil)

	service := NewPostService(mockRepo, mockMedia, nil, nil)

	post, err := service.Create(context.Background(), CreatePostRequest{
		ImageName:        "cat.jpg",
		ImageContentType: "image/jpeg",
		ImageData:        imageData,
		AuthorID:         7,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/abc.jpg", post.ImageURL)

	mockMedia.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

// TestCreate_UploadFails tests that a storage failure aborts creation
func TestCreate_UploadFails(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockMedia := new(MockMediaStore)

	mockMedia.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("bucket unavailable"))

	service := NewPostService(mockRepo, mockMedia, nil, nil)

	_, err := service.Create(context.Background(), CreatePostRequest{
		ImageName: "cat.jpg",
		ImageData: []byte{1},
		AuthorID:  7,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store post image")

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestLike_EmitsNotificationEvent tests that liking someone else's post
// publishes a like event addressed to the author
func TestLike_EmitsNotificationEvent(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockProducer := new(MockProducer)

	post := &Post{ID: 10, AuthorID: 1}
	mockRepo.On("GetByID", mock.Anything, int64(10)).Return(post, nil)
	mockRepo.On("Like", mock.Anything, int64(10), int64(2)).Return([]int64{2}, true, nil)
	mockProducer.On("Emit", mock.Anything, mock.MatchedBy(func(ev events.InteractionEvent) bool {
		return ev.Kind == events.KindLike && ev.ActorID == 2 && ev.TargetUserID == 1 && ev.PostID == 10
	})).Return(nil)

	service := NewPostService(mockRepo, nil, mockProducer, nil)

	state, err := service.Like(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, state.Likes)
	assert.Equal(t, 1, state.Count)

	mockProducer.AssertExpectations(t)
}

// TestLike_OwnPost tests that liking your own post produces no event
func TestLike_OwnPost(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockProducer := new(MockProducer)

	post := &Post{ID: 10, AuthorID: 2}
	mockRepo.On("GetByID", mock.Anything, int64(10)).Return(post, nil)
	mockRepo.On("Like", mock.Anything, int64(10), int64(2)).Return([]int64{2}, true, nil)

	service := NewPostService(mockRepo, nil, mockProducer, nil)

	_, err := service.Like(context.Background(), 10, 2)
	require.NoError(t, err)

	mockProducer.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
}

// TestLike_AlreadyLiked tests that a repeated like keeps the count
// stable and emits no event: the insert was a no-op, so there was no
// NotLiked -> Liked transition to notify about
func TestLike_AlreadyLiked(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockProducer := new(MockProducer)

	post := &Post{ID: 10, AuthorID: 1}
	mockRepo.On("GetByID", mock.Anything, int64(10)).Return(post, nil)
	// Repository set semantics: the user is already in the like list and
	// the insert is a no-op.
	mockRepo.On("Like", mock.Anything, int64(10), int64(2)).Return([]int64{2}, false, nil)

	service := NewPostService(mockRepo, nil, mockProducer, nil)

	state, err := service.Like(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Count)

	mockProducer.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
}

// TestLike_PostNotFound tests liking a post that does not exist
func TestLike_PostNotFound(t *testing.T) {
	mockRepo := new(MockPostRepository)

	mockRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, ErrNotFound)

	service := NewPostService(mockRepo, nil, nil, nil)

	_, err := service.Like(context.Background(), 99, 2)
	assert.ErrorIs(t, err, ErrNotFound)

	mockRepo.AssertNotCalled(t, "Like", mock.Anything, mock.Anything, mock.Anything)
}

// TestUnlike_NeverLiked tests that unliking a post the user never liked
// succeeds and reports the unchanged like list
func TestUnlike_NeverLiked(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockProducer := new(MockProducer)

	mockRepo.On("Unlike", mock.Anything, int64(10), int64(2)).Return([]int64{5, 6}, nil)

	service := NewPostService(mockRepo, nil, mockProducer, nil)

	state, err := service.Unlike(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 6}, state.Likes)
	assert.Equal(t, 2, state.Count)

	// Unlike never notifies.
	mockProducer.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
}

// TestBookmark_Toggle tests that consecutive bookmark calls flip membership
func TestBookmark_Toggle(t *testing.T) {
	mockRepo := new(MockPostRepository)

	mockRepo.On("ToggleBookmark", mock.Anything, int64(10), int64(2)).Return(true, nil).Once()
	mockRepo.On("ToggleBookmark", mock.Anything, int64(10), int64(2)).Return(false, nil).Once()

	service := NewPostService(mockRepo, nil, nil, nil)
	ctx := context.Background()

	state, err := service.Bookmark(ctx, 10, 2)
	require.NoError(t, err)
	assert.True(t, state.Bookmarked)

	state, err = service.Bookmark(ctx, 10, 2)
	require.NoError(t, err)
	assert.False(t, state.Bookmarked)

	mockRepo.AssertExpectations(t)
}

// TestDelete_NotAuthor tests that only the author may delete a post
func TestDelete_NotAuthor(t *testing.T) {
	mockRepo := new(MockPostRepository)

	post := &Post{ID: 10, AuthorID: 1}
	mockRepo.On("GetByID", mock.Anything, int64(10)).Return(post, nil)

	service := NewPostService(mockRepo, nil, nil, nil)

	err := service.Delete(context.Background(), 10, 2)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// TestDelete_Success tests author deletion
func TestDelete_Success(t *testing.T) {
	mockRepo := new(MockPostRepository)

	post := &Post{ID: 10, AuthorID: 1}
	mockRepo.On("GetByID", mock.Anything, int64(10)).Return(post, nil)
	mockRepo.On("Delete", mock.Anything, int64(10)).Return(nil)

	service := NewPostService(mockRepo, nil, nil, nil)

	err := service.Delete(context.Background(), 10, 1)
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

// TestLike_ProducerFailureDoesNotFailLike tests that event emission is
// best effort
func TestLike_ProducerFailureDoesNotFailLike(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockProducer := new(MockProducer)

	post := &Post{ID: 10, AuthorID: 1}
	mockRepo.On("GetByID", mock.Anything, int64(10)).Return(post, nil)
	mockRepo.On("Like", mock.Anything, int64(10), int64(2)).Return([]int64{2}, true, nil)
	mockProducer.On("Emit", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	service := NewPostService(mockRepo, nil, mockProducer, nil)

	state, err := service.Like(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Count)
}
