package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileCache stores one JSON document per entry under dir/<xx>/<hash>.json,
// where xx is the first byte of the hashed key in hex.
type FileCache struct {
	dir string
	now func() time.Time
}

// NewFileCache creates dir if needed and returns a cache rooted there.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir, now: time.Now}, nil
}

// fileEntry is the on-disk envelope. Key is kept for `cache` debugging only.
type fileEntry struct {
	Key       string    `json:"key"`
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

func (e fileEntry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// readEntry returns ok=false for an entry that exists but cannot be decoded.
func readEntry(path string) (e fileEntry, ok bool, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fileEntry{}, false, err
	}
	return e, json.Unmarshal(raw, &e) == nil, nil
}

// Get returns a miss for absent, expired or corrupt entries and removes
// the latter two.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)
	e, ok, err := readEntry(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if !ok || e.expired(c.now()) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return e.Data, true, nil
}

// Set writes the entry through a temporary file and a rename, so concurrent
// windrose processes never observe a half-written entry.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	e := fileEntry{Key: key, Data: data}
	if ttl > 0 {
		e.ExpiresAt = c.now().Add(ttl)
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Dir returns the cache root directory.
func (c *FileCache) Dir() string { return c.dir }

// Clear removes every entry and shard directory and reports how many entries
// were deleted. The root directory is kept.
func (c *FileCache) Clear(ctx context.Context) (int, error) {
	return c.sweep(ctx, func(string) bool { return true })
}

// Prune removes expired and unreadable entries and reports how many were deleted.
func (c *FileCache) Prune(ctx context.Context) (int, error) {
	now := c.now()
	return c.sweep(ctx, func(path string) bool {
		e, ok, err := readEntry(path)
		return err == nil && (!ok || e.expired(now))
	})
}

// sweep deletes the entry files for which drop returns true, then removes
// shard directories left empty.
func (c *FileCache) sweep(ctx context.Context, drop func(path string) bool) (int, error) {
	shards, err := os.ReadDir(c.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, shard := range shards {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if !shard.IsDir() {
			continue
		}
		dir := filepath.Join(c.dir, shard.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, f := range files {
			path := filepath.Join(dir, f.Name())
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") || !drop(path) {
				continue
			}
			if os.Remove(path) == nil {
				removed++
			}
		}
		_ = os.Remove(dir) // fails while entries remain
	}
	return removed, nil
}

func (c *FileCache) Close() error { return nil }

func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+".json")
}

var (
	_ Cache   = (*FileCache)(nil)
	_ Clearer = (*FileCache)(nil)
	_ Pruner  = (*FileCache)(nil)
)
