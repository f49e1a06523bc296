package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) ReviewMarkerKey(kitchenID, orderID uuid.UUID) string {
	return "review:" + kitchenID.String() + ":" + orderID.String()
}

func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	res, err := c.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (c *RedisCache) SetMarker(ctx context.Context, key string) error {
	return c.Client.Set(ctx, key, "1", c.TTL).Err()
}

// IsRevoked reads the sign-out list kitchen-svc maintains in the same Redis.
func (c *RedisCache) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return c.Exists(ctx, "session:revoked:"+tokenID)
}
