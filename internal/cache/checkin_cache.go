package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"teampulse/internal/model"
)

// CheckinCache pins the generated check-in for a user's day so repeated
// fetches see the same question set (selection within the bank is
// random). Only the generated round is cached; every analytical result
// is recomputed per request.
type CheckinCache interface {
	GetToday(ctx context.Context, userID, day string) (*model.CheckIn, error)
	SetToday(ctx context.Context, userID, day string, checkin *model.CheckIn) error
}

type checkinCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCheckinCache creates a new check-in cache
func NewCheckinCache(client *redis.Client) CheckinCache {
	return &checkinCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *checkinCache) todayKey(userID, day string) string {
	return fmt.Sprintf("checkin:%s:%s", userID, day)
}

func (c *checkinCache) GetToday(ctx context.Context, userID, day string) (*model.CheckIn, error) {
	data, err := c.client.Get(ctx, c.todayKey(userID, day)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var checkin model.CheckIn
	if err := json.Unmarshal([]byte(data), &checkin); err != nil {
		return nil, err
	}
	return &checkin, nil
}

func (c *checkinCache) SetToday(ctx context.Context, userID, day string, checkin *model.CheckIn) error {
	data, err := json.Marshal(checkin)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.todayKey(userID, day), data, c.ttl).Err()
}
