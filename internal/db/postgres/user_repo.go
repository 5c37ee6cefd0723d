package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"Snapgram/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.UserRepository {
	return &postgresUserRepo{db: db}
}

// GetByID retrieves a user with follower/following/bookmark id lists.
// The lists are built with ordered array aggregates so insertion order
// survives the round trip.
func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	user := &users.User{}
	query := `
		SELECT id, username, profile_picture, bio, created_at
		FROM users
		WHERE id = $1`

	var profilePicture, bio sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Username, &profilePicture, &bio, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	user.ProfilePicture = profilePicture.String
	user.Bio = bio.String

	user.Following, err = r.idList(ctx,
		`SELECT target_id FROM follows WHERE follower_id = $1 ORDER BY created_at, target_id`, id)
	if err != nil {
		return nil, err
	}
	user.Followers, err = r.idList(ctx,
		`SELECT follower_id FROM follows WHERE target_id = $1 ORDER BY created_at, follower_id`, id)
	if err != nil {
		return nil, err
	}
	user.Bookmarks, err = r.idList(ctx,
		`SELECT post_id FROM bookmarks WHERE user_id = $1 ORDER BY created_at, post_id`, id)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ToggleFollow flips the (follower, target) relationship in one
// transaction: first the unfollow half as a keyed delete, then, when
// nothing was deleted, the follow half as an insert-if-absent. One call
// performs exactly one transition.
func (r *postgresUserRepo) ToggleFollow(ctx context.Context, followerID, targetID int64) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback follow toggle",
				slog.Int64("follower", followerID),
				slog.Int64("target", targetID),
				slog.String("error", err.Error()))
		}
	}()

	result, err := tx.ExecContext(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND target_id = $2`, followerID, targetID)
	if err != nil {
		return false, fmt.Errorf("failed to remove follow: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check follow result: %w", err)
	}

	following := false
	if removed == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, targetID).Scan(&exists); err != nil {
			return false, fmt.Errorf("failed to check target user: %w", err)
		}
		if !exists {
			return false, users.ErrUserNotFound
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO follows (follower_id, target_id)
			VALUES ($1, $2)
			ON CONFLICT (follower_id, target_id) DO NOTHING`, followerID, targetID)
		if err != nil {
			return false, fmt.Errorf("failed to insert follow: %w", err)
		}
		following = true
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit follow toggle: %w", err)
	}
	return following, nil
}

// ListSuggested returns users the viewer doesn't follow yet, newest first.
func (r *postgresUserRepo) ListSuggested(ctx context.Context, viewerID int64, limit int) ([]*users.User, error) {
	query := `
		SELECT id, username, profile_picture, bio, created_at
		FROM users
		WHERE id <> $1
		  AND id NOT IN (SELECT target_id FROM follows WHERE follower_id = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, viewerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query suggested users: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	result := []*users.User{}
	for rows.Next() {
		user := &users.User{}
		var profilePicture, bio sql.NullString
		err := rows.Scan(&user.ID, &user.Username, &profilePicture, &bio, &user.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		user.ProfilePicture = profilePicture.String
		user.Bio = bio.String
		result = append(result, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return result, nil
}

func (r *postgresUserRepo) idList(ctx context.Context, query string, arg int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query id list: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ids: %w", err)
	}
	return ids, nil
}
