package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig configures [NewRedisCache].
type RedisConfig struct {
	Addr     string // host:port
	Password string
	DB       int
	// Prefix is prepended to every key, e.g. "windrose:".
	Prefix string
	// DialTimeout bounds the initial connectivity check. Defaults to 5s.
	DialTimeout time.Duration
	// Retry governs Get and Set on transient network errors.
	Retry RetryPolicy
}

// RedisCache stores entries in Redis with native key expiration.
type RedisCache struct {
	client *redis.Client
	prefix string
	retry  RetryPolicy
}

// NewRedisCache connects to Redis and verifies the connection with PING.
func NewRedisCache(ctx context.Context, cfg RedisConfig) (Cache, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 5 * time.Second
	}
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", ErrUnavailable, cfg.Addr, err)
	}
	rc := newRedisCacheFromClient(client, cfg.Prefix)
	rc.retry = cfg.Retry
	return rc, nil
}

func newRedisCacheFromClient(client *redis.Client, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix, retry: DefaultRetryPolicy}
}

// Get retrieves a value from Redis.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := c.retry.Do(ctx, func() error {
		v, err := c.client.Get(ctx, c.prefix+key).Bytes()
		if errors.Is(err, redis.Nil) {
			data = nil
			return nil
		}
		if err != nil {
			return classify(err)
		}
		data = v
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return data, data != nil, nil
}

// Set stores a value in Redis. A zero ttl stores the key without expiration.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.retry.Do(ctx, func() error {
		return classify(c.client.Set(ctx, c.prefix+key, data, ttl).Err())
	})
}

// Delete removes a key from Redis.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return classify(c.client.Del(ctx, c.prefix+key).Err())
}

// Clear deletes every key under the cache prefix and returns how many were removed.
func (c *RedisCache) Clear(ctx context.Context) (int, error) {
	var removed int
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 500).Iterator()
	var batch []string
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := c.client.Del(ctx, batch...).Result()
		removed += int(n)
		batch = batch[:0]
		return err
	}
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == 500 {
			if err := flush(); err != nil {
				return removed, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return removed, err
	}
	return removed, flush()
}

// Close closes the Redis client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// classify marks network failures as retryable.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return Retryable(fmt.Errorf("%w: %v", ErrUnavailable, err))
	}
	return err
}

// Ensure RedisCache implements Cache.
var _ Cache = (*RedisCache)(nil)
var _ Clearer = (*RedisCache)(nil)
