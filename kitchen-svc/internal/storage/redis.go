package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tiffin-finder/config"
	"tiffin-finder/kitchen-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const NearbyKitchensKey = config.NearbyKitchensKey

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) GetNearby(ctx context.Context) ([]domain.Kitchen, bool, error) {
	payload, err := c.Client.Get(ctx, NearbyKitchensKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var kitchens []domain.Kitchen
	if err := json.Unmarshal(payload, &kitchens); err != nil {
		return nil, false, err
	}
	return kitchens, true, nil
}

func (c *RedisCache) SetNearby(ctx context.Context, kitchens []domain.Kitchen) error {
	payload, err := json.Marshal(kitchens)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, NearbyKitchensKey, payload, c.TTL).Err()
}

func (c *RedisCache) InvalidateNearby(ctx context.Context) error {
	return c.Client.Del(ctx, NearbyKitchensKey).Err()
}

func revokedKey(tokenID string) string {
	return "session:revoked:" + tokenID
}

func (c *RedisCache) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.Client.Set(ctx, revokedKey(tokenID), "1", ttl).Err()
}

func (c *RedisCache) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	res, err := c.Client.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

type RedisNotifier struct {
	Client *redis.Client
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{Client: client}
}

func (n *RedisNotifier) Publish(ctx context.Context, channel string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return n.Client.Publish(ctx, channel, data).Err()
}

// Subscribe returns a stream of raw payloads published on channel. The
// stream closes when the returned cancel func is called.
func (n *RedisNotifier) Subscribe(ctx context.Context, channel string) (<-chan []byte, func(), error) {
	pubsub := n.Client.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, nil, err
	}

	out := make(chan []byte, 16)
	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			select {
			case out <- []byte(msg.Payload):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, func() { pubsub.Close() }, nil
}
