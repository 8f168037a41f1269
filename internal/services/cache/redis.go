package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on top of a Redis server. All Redis failures
// are reported as cache misses so a broken or unreachable Redis degrades the
// search path to process-local caching instead of failing requests.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// RedisOptions configures a RedisStore
type RedisOptions struct {
	Address  string
	Password string
	DB       int
	Prefix   string
}

// NewRedisStore creates a new Redis-backed cache store
func NewRedisStore(opts RedisOptions) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Address,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "catalog"
	}

	return &RedisStore{client: client, prefix: prefix}
}

// Ping tests the Redis connection
func (rs *RedisStore) Ping(ctx context.Context) error {
	if err := rs.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}

// Get retrieves a value from the cache
func (rs *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := rs.client.Get(ctx, rs.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[WARN] Redis get failed for %s: %v", key, err)
		}
		return nil, false
	}
	return value, true
}

// Set stores a value in the cache with a TTL
func (rs *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if err := rs.client.Set(ctx, rs.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed for %s: %w", key, err)
	}
	return nil
}

// Delete removes a value from the cache
func (rs *RedisStore) Delete(ctx context.Context, key string) error {
	if err := rs.client.Del(ctx, rs.key(key)).Err(); err != nil {
		return fmt.Errorf("redis delete failed for %s: %w", key, err)
	}
	return nil
}

// Clear removes all values under this store's prefix
func (rs *RedisStore) Clear(ctx context.Context) error {
	iter := rs.client.Scan(ctx, 0, rs.prefix+":*", 0).Iterator()
	for iter.Next(ctx) {
		if err := rs.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis clear failed: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis clear scan failed: %w", err)
	}
	return nil
}

// Has checks if a key exists in the cache
func (rs *RedisStore) Has(ctx context.Context, key string) bool {
	n, err := rs.client.Exists(ctx, rs.key(key)).Result()
	if err != nil {
		return false
	}
	return n > 0
}

func (rs *RedisStore) key(key string) string {
	return rs.prefix + ":" + key
}
