package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// StreakCache tracks consecutive check-in days per user in Redis.
type StreakCache interface {
	// Bump records a completed check-in for the given day (YYYY-MM-DD)
	// and returns the current streak length.
	Bump(ctx context.Context, userID, day string) (int64, error)
	Get(ctx context.Context, userID string) (int64, error)
}

type streakCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStreakCache creates a new streak cache
func NewStreakCache(client *redis.Client) StreakCache {
	return &streakCache{
		client: client,
		ttl:    60 * 24 * time.Hour,
	}
}

func (c *streakCache) countKey(userID string) string {
	return fmt.Sprintf("streak:%s:count", userID)
}

func (c *streakCache) lastKey(userID string) string {
	return fmt.Sprintf("streak:%s:last", userID)
}

func (c *streakCache) Bump(ctx context.Context, userID, day string) (int64, error) {
	last, err := c.client.Get(ctx, c.lastKey(userID)).Result()
	if err != nil && err != redis.Nil {
		return 0, err
	}

	if last == day {
		return c.Get(ctx, userID)
	}

	parsed, perr := time.Parse("2006-01-02", day)
	yesterday := ""
	if perr == nil {
		yesterday = parsed.AddDate(0, 0, -1).Format("2006-01-02")
	}

	var count int64
	if last != "" && last == yesterday {
		count, err = c.client.Incr(ctx, c.countKey(userID)).Result()
		if err != nil {
			return 0, err
		}
	} else {
		count = 1
		if err := c.client.Set(ctx, c.countKey(userID), count, c.ttl).Err(); err != nil {
			return 0, err
		}
	}

	if err := c.client.Set(ctx, c.lastKey(userID), day, c.ttl).Err(); err != nil {
		return 0, err
	}
	c.client.Expire(ctx, c.countKey(userID), c.ttl)
	return count, nil
}

func (c *streakCache) Get(ctx context.Context, userID string) (int64, error) {
	count, err := c.client.Get(ctx, c.countKey(userID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}
