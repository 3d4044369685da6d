package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/windrose/pkg/cache"
	"github.com/matzehuels/windrose/pkg/config"
)

func newTestCLI(t *testing.T) *CLI {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	prev := stdout
	stdout = io.Discard
	t.Cleanup(func() { stdout = prev })
	c := New(io.Discard, LogInfo)
	if err := c.loadConfig(); err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	return c
}

func TestNewCacheBackends(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		noCache bool
		want    string
	}{
		{"file by default", config.BackendFile, false, "file"},
		{"none backend", config.BackendNone, false, "null"},
		{"no-cache flag wins", config.BackendFile, true, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCLI(t)
			c.Config.Cache.Backend = tt.backend

			cc, err := c.newCache(context.Background(), tt.noCache)
			if err != nil {
				t.Fatalf("newCache() error: %v", err)
			}
			defer cc.Close()

			got := "other"
			switch cc.(type) {
			case *cache.FileCache:
				got = "file"
			case *cache.NullCache:
				got = "null"
			}
			if got != tt.want {
				t.Errorf("newCache() backend = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNewCacheRedisFallsBackToFile(t *testing.T) {
	c := newTestCLI(t)
	c.Config.Cache.Backend = config.BackendRedis
	c.Config.Cache.RedisAddr = "127.0.0.1:1" // nothing listens here

	cc, err := c.newCache(context.Background(), false)
	if err != nil {
		t.Fatalf("newCache() error: %v", err)
	}
	defer cc.Close()

	if _, ok := cc.(*cache.FileCache); !ok {
		t.Errorf("newCache() = %T, want *cache.FileCache", cc)
	}
}

func TestFileCacheUsesConfiguredDir(t *testing.T) {
	c := newTestCLI(t)
	dir := filepath.Join(t.TempDir(), "layouts")
	c.Config.Cache.Dir = dir

	cc, err := c.newCache(context.Background(), false)
	if err != nil {
		t.Fatalf("newCache() error: %v", err)
	}
	defer cc.Close()

	fc, ok := cc.(*cache.FileCache)
	if !ok {
		t.Fatalf("newCache() = %T, want *cache.FileCache", cc)
	}
	if fc.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", fc.Dir(), dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache dir not created: %v", err)
	}
}

func TestCacheClear(t *testing.T) {
	c := newTestCLI(t)
	c.Config.Cache.Dir = t.TempDir()
	ctx := context.Background()

	cc, err := c.newCache(ctx, false)
	if err != nil {
		t.Fatalf("newCache() error: %v", err)
	}
	for _, key := range []string{"a", "b", "c"} {
		if err := cc.Set(ctx, key, []byte(key), 0); err != nil {
			t.Fatalf("Set(%q) error: %v", key, err)
		}
	}
	cc.Close()

	if err := c.runCacheClear(ctx); err != nil {
		t.Fatalf("runCacheClear() error: %v", err)
	}

	cc, _ = c.newCache(ctx, false)
	defer cc.Close()
	if _, hit, _ := cc.Get(ctx, "a"); hit {
		t.Error("entry survived cache clear")
	}
}

func TestCachePrune(t *testing.T) {
	c := newTestCLI(t)
	c.Config.Cache.Dir = t.TempDir()
	ctx := context.Background()

	cc, err := c.newCache(ctx, false)
	if err != nil {
		t.Fatalf("newCache() error: %v", err)
	}
	if err := cc.Set(ctx, "stale", []byte("x"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	if err := cc.Set(ctx, "live", []byte("y"), time.Hour); err != nil {
		t.Fatal(err)
	}
	cc.Close()
	time.Sleep(5 * time.Millisecond)

	if err := c.runCachePrune(ctx); err != nil {
		t.Fatalf("runCachePrune() error: %v", err)
	}

	cc, _ = c.newCache(ctx, false)
	defer cc.Close()
	if _, hit, _ := cc.Get(ctx, "live"); !hit {
		t.Error("live entry removed by prune")
	}

	c.Config.Cache.Backend = config.BackendNone
	if err := c.runCachePrune(ctx); err != nil {
		t.Errorf("runCachePrune() with caching disabled error: %v", err)
	}
}
