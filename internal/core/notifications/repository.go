package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Repository stores per-user notification feeds.
type Repository interface {
	Push(ctx context.Context, n Notification) error
	List(ctx context.Context, userID int64, limit int64) ([]Notification, error)
}

const (
	feedTTL = 30 * 24 * time.Hour
	feedCap = 500
)

type redisRepo struct {
	rdb *redis.Client
}

// NewRedisRepository creates a Redis-backed notification store.
// Notifications live in one list per user, most recent first, capped and
// expiring so inactive feeds don't accumulate.
func NewRedisRepository(rdb *redis.Client) Repository {
	return &redisRepo{rdb: rdb}
}

func feedKey(userID int64) string { return fmt.Sprintf("notif:%d", userID) }

func (r *redisRepo) Push(ctx context.Context, n Notification) error {
	b, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	key := feedKey(n.UserID)
	pipe := r.rdb.TxPipeline()
	pipe.LPush(ctx, key, b)
	pipe.LTrim(ctx, key, 0, feedCap-1)
	pipe.Expire(ctx, key, feedTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push notification: %w", err)
	}
	return nil
}

func (r *redisRepo) List(ctx context.Context, userID int64, limit int64) ([]Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	vals, err := r.rdb.LRange(ctx, feedKey(userID), 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	out := make([]Notification, 0, len(vals))
	for _, v := range vals {
		var n Notification
		if json.Unmarshal([]byte(v), &n) == nil {
			out = append(out, n)
		}
	}
	return out, nil
}
