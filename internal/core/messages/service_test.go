package messages

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMessageRepository is a mock implementation of Repository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepository) ListBetween(ctx context.Context, userID, otherID int64) ([]Message, error) {
	args := m.Called(ctx, userID, otherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Message), args.Error(1)
}

// TestSend_Success tests sending a message
func TestSend_Success(t *testing.T) {
	mockRepo := new(MockMessageRepository)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(msg *Message) bool {
		return msg.SenderID == 1 && msg.ReceiverID == 2 && msg.Body == "hey"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*Message).ID = 50
	}).Return(nil)

	service := NewMessageService(mockRepo, nil)

	msg, err := service.Send(context.Background(), 1, 2, "hey")
	require.NoError(t, err)
	assert.Equal(t, int64(50), msg.ID)
	assert.Equal(t, "hey", msg.Body)

	mockRepo.AssertExpectations(t)
}

// TestSend_EmptyBody tests that blank messages are rejected
func TestSend_EmptyBody(t *testing.T) {
	mockRepo := new(MockMessageRepository)

	service := NewMessageService(mockRepo, nil)

	_, err := service.Send(context.Background(), 1, 2, "  \n ")
	assert.ErrorIs(t, err, ErrEmptyBody)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestSend_TooLong tests the message length limit
func TestSend_TooLong(t *testing.T) {
	mockRepo := new(MockMessageRepository)

	service := NewMessageService(mockRepo, nil)

	_, err := service.Send(context.Background(), 1, 2, strings.Repeat("a", maxMessageLength+1))
	assert.ErrorIs(t, err, ErrBodyTooLong)
}

// TestSend_ReceiverNotFound tests sending to an unknown user
func TestSend_ReceiverNotFound(t *testing.T) {
	mockRepo := new(MockMessageRepository)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(ErrReceiverNotFound)

	service := NewMessageService(mockRepo, nil)

	_, err := service.Send(context.Background(), 1, 99, "hello?")
	assert.ErrorIs(t, err, ErrReceiverNotFound)
}

// TestSend_RepoError tests that storage failures are wrapped
func TestSend_RepoError(t *testing.T) {
	mockRepo := new(MockMessageRepository)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("database error"))

	service := NewMessageService(mockRepo, nil)

	_, err := service.Send(context.Background(), 1, 2, "hello")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send message")
}

// TestConversation tests listing the exchange between two users
func TestConversation(t *testing.T) {
	mockRepo := new(MockMessageRepository)

	expected := []Message{
		{ID: 1, SenderID: 1, ReceiverID: 2, Body: "hi"},
		{ID: 2, SenderID: 2, ReceiverID: 1, Body: "hi back"},
	}
	mockRepo.On("ListBetween", mock.Anything, int64(1), int64(2)).Return(expected, nil)

	service := NewMessageService(mockRepo, nil)

	msgs, err := service.Conversation(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "hi back", msgs[1].Body)
}
