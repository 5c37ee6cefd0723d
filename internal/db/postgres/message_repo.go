package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"Snapgram/internal/core/messages"
)

type postgresMessageRepo struct {
	db *sql.DB
}

// NewMessageRepository creates a new PostgreSQL message repository
func NewMessageRepository(db *sql.DB) messages.Repository {
	return &postgresMessageRepo{db: db}
}

// Create inserts a direct message.
func (r *postgresMessageRepo) Create(ctx context.Context, msg *messages.Message) error {
	query := `
		INSERT INTO messages (sender_id, receiver_id, body)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, msg.SenderID, msg.ReceiverID, msg.Body).
		Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "messages_receiver_id_fkey") {
			return messages.ErrReceiverNotFound
		}
		return fmt.Errorf("failed to insert message: %w", err)
	}

	return nil
}

// ListBetween returns the conversation between two users in creation order.
func (r *postgresMessageRepo) ListBetween(ctx context.Context, userID, otherID int64) ([]messages.Message, error) {
	query := `
		SELECT id, sender_id, receiver_id, body, created_at
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, userID, otherID)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	result := []messages.Message{}
	for rows.Next() {
		var msg messages.Message
		err := rows.Scan(&msg.ID, &msg.SenderID, &msg.ReceiverID, &msg.Body, &msg.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		result = append(result, msg)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}

	return result, nil
}
