package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const flashKeyPrefix = "flash:"

// RedisStore keeps flash queues in Redis lists
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ FlashStore = (*RedisStore)(nil)

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(ctx context.Context, opts *redis.Options, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

// Push appends a message to the session list and refreshes its TTL
func (rs *RedisStore) Push(ctx context.Context, sessionID, message string) error {
	key := flashKeyPrefix + sessionID
	pipe := rs.client.TxPipeline()
	pipe.RPush(ctx, key, message)
	pipe.Expire(ctx, key, rs.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push flash message: %w", err)
	}
	return nil
}

// Pop atomically reads and deletes the session list
func (rs *RedisStore) Pop(ctx context.Context, sessionID string) ([]string, error) {
	key := flashKeyPrefix + sessionID
	pipe := rs.client.TxPipeline()
	rng := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to pop flash messages: %w", err)
	}

	messages := rng.Val()
	if len(messages) == 0 {
		return nil, nil
	}
	return messages, nil
}

// Close closes the Redis client
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
