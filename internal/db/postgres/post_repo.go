package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lib/pq"

	"Snapgram/internal/core/comments"
	"Snapgram/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post. Likes and comments start empty.
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (author_id, caption, image_url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, post.AuthorID, post.Caption, post.ImageURL).
		Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "posts_author_id_fkey") {
			return fmt.Errorf("post author %d does not exist", post.AuthorID)
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetByID retrieves a post with author, like list and comments.
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := `
		SELECT p.id, p.author_id, p.caption, p.image_url, p.created_at,
		       u.username, u.profile_picture
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if err := r.attachInteractions(ctx, []*posts.Post{post}); err != nil {
		return nil, err
	}
	return post, nil
}

// ListRecent returns the newest posts first, with likes and comments.
func (r *postgresPostRepo) ListRecent(ctx context.Context, limit int) ([]*posts.Post, error) {
	query := `
		SELECT p.id, p.author_id, p.caption, p.image_url, p.created_at,
		       u.username, u.profile_picture
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1`

	return r.queryPosts(ctx, query, limit)
}

// ListByAuthor returns one author's posts, newest first.
func (r *postgresPostRepo) ListByAuthor(ctx context.Context, authorID int64) ([]*posts.Post, error) {
	query := `
		SELECT p.id, p.author_id, p.caption, p.image_url, p.created_at,
		       u.username, u.profile_picture
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.author_id = $1
		ORDER BY p.created_at DESC, p.id DESC`

	return r.queryPosts(ctx, query, authorID)
}

// Like adds the user to the post's like set as one atomic statement.
// ON CONFLICT DO NOTHING gives the set semantics: a repeated like is a
// no-op, reported through the inserted return so no event fires for it.
func (r *postgresPostRepo) Like(ctx context.Context, postID, userID int64) ([]int64, bool, error) {
	query := `
		INSERT INTO post_likes (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, user_id) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		if strings.Contains(err.Error(), "post_likes_post_id_fkey") {
			return nil, false, posts.ErrNotFound
		}
		return nil, false, fmt.Errorf("failed to insert like: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("failed to check like result: %w", err)
	}

	likes, err := r.likesForPost(ctx, postID)
	if err != nil {
		return nil, false, err
	}
	return likes, rowsAffected > 0, nil
}

// Unlike removes the user from the post's like set. Removing a like that
// was never there is a success no-op.
func (r *postgresPostRepo) Unlike(ctx context.Context, postID, userID int64) ([]int64, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`, postID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return nil, posts.ErrNotFound
	}

	query := `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, postID, userID); err != nil {
		return nil, fmt.Errorf("failed to delete like: %w", err)
	}

	return r.likesForPost(ctx, postID)
}

// ToggleBookmark flips the post's membership in the user's bookmark set.
// Try the unbookmark half first; if nothing was deleted, insert.
func (r *postgresPostRepo) ToggleBookmark(ctx context.Context, postID, userID int64) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback bookmark toggle", slog.String("error", err.Error()))
		}
	}()

	result, err := tx.ExecContext(ctx,
		`DELETE FROM bookmarks WHERE user_id = $1 AND post_id = $2`, userID, postID)
	if err != nil {
		return false, fmt.Errorf("failed to remove bookmark: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check bookmark result: %w", err)
	}

	bookmarked := false
	if removed == 0 {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO bookmarks (user_id, post_id)
			VALUES ($1, $2)
			ON CONFLICT (user_id, post_id) DO NOTHING`, userID, postID)
		if err != nil {
			if strings.Contains(err.Error(), "bookmarks_post_id_fkey") {
				return false, posts.ErrNotFound
			}
			return false, fmt.Errorf("failed to insert bookmark: %w", err)
		}
		bookmarked = true
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit bookmark toggle: %w", err)
	}
	return bookmarked, nil
}

// Delete removes a post and cascades its comments, likes and bookmarks.
// The operation is atomic - either all rows go or none.
func (r *postgresPostRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction for post=%d: %w", id, err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback post delete",
				slog.Int64("post", id),
				slog.String("error", err.Error()))
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete comments for post=%d: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM post_likes WHERE post_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete likes for post=%d: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM bookmarks WHERE post_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete bookmarks for post=%d: %w", id, err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post=%d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected for post=%d: %w", id, err)
	}
	if rowsAffected == 0 {
		return posts.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit post delete for post=%d: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*posts.Post, error) {
	post := &posts.Post{Author: &posts.AuthorView{}}
	var caption, imageURL, profilePicture sql.NullString

	err := row.Scan(&post.ID, &post.AuthorID, &caption, &imageURL, &post.CreatedAt,
		&post.Author.Username, &profilePicture)
	if err != nil {
		return nil, err
	}

	post.Caption = caption.String
	post.ImageURL = imageURL.String
	post.Author.ID = post.AuthorID
	post.Author.ProfilePicture = profilePicture.String
	post.Likes = []int64{}
	post.Comments = []comments.Comment{}
	return post, nil
}

func (r *postgresPostRepo) queryPosts(ctx context.Context, query string, args ...interface{}) ([]*posts.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	result := []*posts.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		result = append(result, post)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	if err := r.attachInteractions(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// attachInteractions loads like lists and comments for a batch of posts
// in two queries.
func (r *postgresPostRepo) attachInteractions(ctx context.Context, batch []*posts.Post) error {
	if len(batch) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(batch))
	byID := make(map[int64]*posts.Post, len(batch))
	for _, p := range batch {
		ids = append(ids, p.ID)
		byID[p.ID] = p
	}

	likeRows, err := r.db.QueryContext(ctx, `
		SELECT post_id, user_id
		FROM post_likes
		WHERE post_id = ANY($1)
		ORDER BY created_at, user_id`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to query likes: %w", err)
	}
	defer func() { _ = likeRows.Close() }()

	for likeRows.Next() {
		var postID, userID int64
		if err := likeRows.Scan(&postID, &userID); err != nil {
			return fmt.Errorf("failed to scan like row: %w", err)
		}
		if p, ok := byID[postID]; ok {
			p.Likes = append(p.Likes, userID)
		}
	}
	if err = likeRows.Err(); err != nil {
		return fmt.Errorf("error iterating like rows: %w", err)
	}

	commentRows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.post_id, c.author_id, c.text, c.created_at,
		       u.username, u.profile_picture
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = ANY($1)
		ORDER BY c.created_at, c.id`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to query comments: %w", err)
	}
	defer func() { _ = commentRows.Close() }()

	for commentRows.Next() {
		comment, err := scanComment(commentRows)
		if err != nil {
			return fmt.Errorf("failed to scan comment row: %w", err)
		}
		if p, ok := byID[comment.PostID]; ok {
			p.Comments = append(p.Comments, comment)
		}
	}
	if err = commentRows.Err(); err != nil {
		return fmt.Errorf("error iterating comment rows: %w", err)
	}

	return nil
}

func (r *postgresPostRepo) likesForPost(ctx context.Context, postID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id
		FROM post_likes
		WHERE post_id = $1
		ORDER BY created_at, user_id`, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query likes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	likes := []int64{}
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan like row: %w", err)
		}
		likes = append(likes, userID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating like rows: %w", err)
	}
	return likes, nil
}
