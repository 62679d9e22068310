package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"ravintola-sinet/reservation-svc/internal/domain"
	"ravintola-sinet/reservation-svc/internal/service"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) AvailabilityKey(date string) string {
	return "availability:" + date
}

func (c *RedisCache) GetAvailability(ctx context.Context, key string) ([]domain.SlotAvailability, bool, error) {
	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var slots []domain.SlotAvailability
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false, err
	}
	return slots, true, nil
}

func (c *RedisCache) SetAvailability(ctx context.Context, key string, slots []domain.SlotAvailability) error {
	payload, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, payload, c.TTL).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

var _ service.AvailabilityCache = (*RedisCache)(nil)
