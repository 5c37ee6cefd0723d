package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"Snapgram/internal/core/comments"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Create inserts a comment and fills its id, timestamp and author view.
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	query := `
		WITH inserted AS (
			INSERT INTO comments (post_id, author_id, text)
			VALUES ($1, $2, $3)
			RETURNING id, post_id, author_id, text, created_at
		)
		SELECT i.id, i.created_at, u.username, u.profile_picture
		FROM inserted i
		JOIN users u ON u.id = i.author_id`

	var username string
	var profilePicture sql.NullString
	err := r.db.QueryRowContext(ctx, query, comment.PostID, comment.AuthorID, comment.Text).
		Scan(&comment.ID, &comment.CreatedAt, &username, &profilePicture)
	if err != nil {
		if strings.Contains(err.Error(), "comments_post_id_fkey") {
			return comments.ErrPostNotFound
		}
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	comment.Author = &comments.AuthorView{
		ID:             comment.AuthorID,
		Username:       username,
		ProfilePicture: profilePicture.String,
	}
	return nil
}

// ListByPost returns a post's comments in creation order.
func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID int64) ([]comments.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, c.text, c.created_at,
		       u.username, u.profile_picture
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at, c.id`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	result := []comments.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		result = append(result, comment)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return result, nil
}

// GetPostAuthor returns the author id of the post the comment targets.
func (r *postgresCommentRepo) GetPostAuthor(ctx context.Context, postID int64) (int64, error) {
	var authorID int64
	err := r.db.QueryRowContext(ctx,
		`SELECT author_id FROM posts WHERE id = $1`, postID).Scan(&authorID)
	if err == sql.ErrNoRows {
		return 0, comments.ErrPostNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get post author: %w", err)
	}
	return authorID, nil
}

func scanComment(row rowScanner) (comments.Comment, error) {
	var comment comments.Comment
	var profilePicture sql.NullString
	author := &comments.AuthorView{}

	err := row.Scan(&comment.ID, &comment.PostID, &comment.AuthorID,
		&comment.Text, &comment.CreatedAt,
		&author.Username, &profilePicture)
	if err != nil {
		return comment, err
	}

	author.ID = comment.AuthorID
	author.ProfilePicture = profilePicture.String
	comment.Author = author
	return comment, nil
}
