package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/segyhp/islamicfin-engine/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCache shares readings between server instances and the scheduler.
type RedisCache struct {
	client redis.Cmdable
}

func NewRedisCache(client redis.Cmdable) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*domain.MetalPrices, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var prices domain.MetalPrices
	if err := json.Unmarshal(raw, &prices); err != nil {
		return nil, err
	}
	return &prices, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, prices *domain.MetalPrices, ttl time.Duration) error {
	raw, err := json.Marshal(prices)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}
