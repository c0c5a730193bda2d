package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"careernav/internal/model"
)

const progressTTL = 24 * time.Hour

// ProgressCache is the read-through cache in front of the progress
// repository, so an in-flight test resumes without a database hit
type ProgressCache interface {
	Set(ctx context.Context, progress *model.TestProgress) error
	Get(ctx context.Context, userID string) (*model.TestProgress, error)
	Delete(ctx context.Context, userID string) error
}

type progressCache struct {
	client *redis.Client
}

func NewProgressCache(client *redis.Client) ProgressCache {
	return &progressCache{
		client: client,
	}
}

func (c *progressCache) Set(ctx context.Context, progress *model.TestProgress) error {
	data, err := json.Marshal(progress)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "progress:"+progress.UserID, data, progressTTL).Err()
}

// Get returns the cached progress, or nil on a cache miss
func (c *progressCache) Get(ctx context.Context, userID string) (*model.TestProgress, error) {
	data, err := c.client.Get(ctx, "progress:"+userID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var progress model.TestProgress
	if err := json.Unmarshal([]byte(data), &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (c *progressCache) Delete(ctx context.Context, userID string) error {
	return c.client.Del(ctx, "progress:"+userID).Err()
}
