package cache

import (
	"context"
	"sync/atomic"
	"time"
)

// NullCache is the backend behind --no-cache and `[cache] backend = "none"`.
// Every lookup misses and every write is dropped, so layouts and artifacts
// are recomputed on each run.
type NullCache struct {
	skipped atomic.Int64
}

// NewNullCache returns a cache that stores nothing.
func NewNullCache() Cache {
	return &NullCache{}
}

func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set drops the entry and counts it.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.skipped.Add(1)
	return nil
}

func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Skipped reports how many writes were dropped since creation.
func (c *NullCache) Skipped() int64 {
	return c.skipped.Load()
}

func (c *NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)
