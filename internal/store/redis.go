package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore хранит значения в Redis без срока жизни
type RedisStore struct {
	redisClient redis.Cmdable
}

// NewRedisStore создает RedisStore поверх готового клиента
func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{redisClient: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: failed to get %s from redis: %w", key, err)
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.redisClient.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("store: failed to set %s in redis: %w", key, err)
	}
	return nil
}
