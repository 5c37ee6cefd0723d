package messages

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

const maxMessageLength = 4000

type messageService struct {
	repo   Repository
	logger *slog.Logger
}

// NewMessageService creates a new direct message service
func NewMessageService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &messageService{repo: repo, logger: logger}
}

func (s *messageService) Send(ctx context.Context, senderID, receiverID int64, body string) (*Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyBody
	}
	if len(body) > maxMessageLength {
		return nil, ErrBodyTooLong
	}

	msg := &Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Body:       body,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		if err == ErrReceiverNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	s.logger.Debug("message sent", "from", senderID, "to", receiverID)
	return msg, nil
}

func (s *messageService) Conversation(ctx context.Context, userID, otherID int64) ([]Message, error) {
	return s.repo.ListBetween(ctx, userID, otherID)
}
