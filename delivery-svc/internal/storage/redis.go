package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"ravintola-sinet/delivery-svc/internal/domain"
	"ravintola-sinet/delivery-svc/internal/service"
)

const CartTTL = 7 * 24 * time.Hour

// RedisCartStore keeps one JSON document per session.
type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{Client: client, TTL: ttl}
}

func (s *RedisCartStore) CartKey(sessionID string) string {
	return "cart:" + sessionID
}

// Load returns an empty cart for sessions that have none yet.
func (s *RedisCartStore) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart := &domain.Cart{SessionID: sessionID, Items: []domain.CartItem{}}
	raw, err := s.Client.Get(ctx, s.CartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, cart); err != nil {
		return nil, err
	}
	cart.SessionID = sessionID
	return cart, nil
}

func (s *RedisCartStore) Save(ctx context.Context, cart *domain.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.CartKey(cart.SessionID), payload, s.TTL).Err()
}

func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, s.CartKey(sessionID)).Err()
}

var _ service.CartStore = (*RedisCartStore)(nil)
