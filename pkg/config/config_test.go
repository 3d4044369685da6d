package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	errs "github.com/matzehuels/windrose/pkg/errors"
	"github.com/matzehuels/windrose/pkg/radial"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if diff := cmp.Diff(radial.DefaultConfig(), cfg.Radial()); diff != "" {
		t.Errorf("Radial() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode(t *testing.T) {
	cfg, err := Decode(`
[layout]
ring_radius = 300
empty_label = "(blank)"

[render]
style = "compass"
formats = ["svg", "png"]
show_balance = true

[cache]
backend = "redis"
redis_addr = "cache:6379"
redis_db = 2
ttl = "24h"
redis_retries = 5

[log]
level = "debug"
format = "json"
`)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := Default()
	want.Layout.RingRadius = 300
	want.Layout.EmptyLabel = "(blank)"
	want.Render.Style = "compass"
	want.Render.Formats = []string{"svg", "png"}
	want.Render.ShowBalance = true
	want.Cache.Backend = BackendRedis
	want.Cache.RedisAddr = "cache:6379"
	want.Cache.RedisDB = 2
	want.Cache.TTL = 24 * time.Hour
	want.Cache.RedisRetries = 5
	want.Log = LogConfig{Level: "debug", Format: LogFormatJSON}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		toml string
		code errs.Code
	}{
		{"syntax", "[layout\n", errs.ErrCodeInvalidInput},
		{"negative radius", "[layout]\nring_radius = -1", errs.ErrCodeInvalidInput},
		{"style", "[render]\nstyle = \"handdrawn\"", errs.ErrCodeInvalidStyle},
		{"format", "[render]\nformats = [\"gif\"]", errs.ErrCodeInvalidFormat},
		{"backend", "[cache]\nbackend = \"memcached\"", errs.ErrCodeInvalidInput},
		{"redis without addr", "[cache]\nbackend = \"redis\"\nredis_addr = \"\"", errs.ErrCodeInvalidInput},
		{"negative retries", "[cache]\nredis_retries = -1", errs.ErrCodeInvalidInput},
		{"log level", "[log]\nlevel = \"loud\"", errs.ErrCodeInvalidInput},
		{"log format", "[log]\nformat = \"xml\"", errs.ErrCodeInvalidInput},
		{"second problem found", "[layout]\nring_radius = -1\n[render]\nstyle = \"sketch\"", errs.ErrCodeInvalidStyle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.toml)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errs.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[layout]\nring_radius = 300\n[cache]\nbackend = \"none\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("WINDROSE_RING_RADIUS", "150")
	t.Setenv("WINDROSE_FORMATS", "svg,json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Layout.RingRadius != 150 {
		t.Errorf("RingRadius = %v, want env override 150", cfg.Layout.RingRadius)
	}
	if cfg.Cache.Backend != BackendNone {
		t.Errorf("Backend = %q, want file value none", cfg.Cache.Backend)
	}
	if diff := cmp.Diff([]string{"svg", "json"}, cfg.Render.Formats); diff != "" {
		t.Errorf("Formats mismatch (-want +got):\n%s", diff)
	}
	if cfg.Layout.NodeWidth != radial.DefaultNodeWidth {
		t.Errorf("NodeWidth = %v, want default", cfg.Layout.NodeWidth)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(default, absent) = %v, want nil", err)
	}
	if cfg.Layout.RingRadius != radial.DefaultRingRadius {
		t.Errorf("RingRadius = %v, want default", cfg.Layout.RingRadius)
	}

	_, err = Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("Load(explicit missing) = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadInvalidEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("WINDROSE_RING_RADIUS", "wide")
	if _, err := Load(""); err == nil {
		t.Error("expected error for non-numeric WINDROSE_RING_RADIUS")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", AppName, "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/cache")

	got, err := Default().CacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/cache", AppName); got != want {
		t.Errorf("CacheDir() = %q, want %q", got, want)
	}

	cfg := Default()
	cfg.Cache.Dir = "/var/cache/wr"
	if got, _ := cfg.CacheDir(); got != "/var/cache/wr" {
		t.Errorf("CacheDir() = %q, want configured dir", got)
	}
}
