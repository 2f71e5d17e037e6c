// Package redis is the cache-aside layer for account documents.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Cache interface {
	// GetCache decodes the cached value into dest and reports whether the key existed.
	GetCache(ctx context.Context, key string, dest interface{}) (bool, error)
	SetCache(ctx context.Context, key string, value interface{}) error
	DeleteCache(ctx context.Context, keys ...string) error
}

type RedisCache struct {
	client *goredis.Client
	ttl    time.Duration
}

/*
* Parse the redis url and ping the server
* Return the cache with the ttl applied to every entry
 */
func Connect(ctx context.Context, url string, ttl time.Duration) (*RedisCache, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Info().Str("addr", opts.Addr).Msg("Redis Connected")
	return NewRedisCache(client, ttl), nil
}

func NewRedisCache(client *goredis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (r *RedisCache) GetCache(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get from cache: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached %s: %w", key, err)
	}
	return true, nil
}

func (r *RedisCache) SetCache(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.client.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in cache: %w", err)
	}
	return nil
}

func (r *RedisCache) DeleteCache(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete from cache: %w", err)
	}
	return nil
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

// NoopCache is used when REDIS_URL is not configured.
type NoopCache struct{}

func (NoopCache) GetCache(context.Context, string, interface{}) (bool, error) { return false, nil }
func (NoopCache) SetCache(context.Context, string, interface{}) error         { return nil }
func (NoopCache) DeleteCache(context.Context, ...string) error                { return nil }
