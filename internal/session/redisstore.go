package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "mdd:session:"

// RedisStorage keeps the session entries in Redis, for shared or ephemeral
// environments where the local filesystem is not a useful place for state.
type RedisStorage struct {
	client redis.UniversalClient
}

// NewRedisStorage wraps an existing Redis client. The caller owns the
// client's lifecycle.
func NewRedisStorage(client redis.UniversalClient) *RedisStorage {
	return &RedisStorage{client: client}
}

// Read implements Storage.
func (r *RedisStorage) Read(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read session entry %s: %w", key, err)
	}
	return val, true, nil
}

// Write implements Storage. Entries carry the token's own expiry, so no TTL
// is set here; Clear removes them explicitly.
func (r *RedisStorage) Write(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("write session entry %s: %w", key, err)
	}
	return nil
}

// Delete implements Storage.
func (r *RedisStorage) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("delete session entry %s: %w", key, err)
	}
	return nil
}
