// Package config loads windrose settings from a TOML file and the
// environment.
//
// Precedence, lowest to highest: built-in defaults, the config file,
// WINDROSE_* environment variables, then command-line flags (applied by the
// caller). A missing config file is not an error.
//
//	# ~/.config/windrose/config.toml
//	[layout]
//	ring_radius = 260
//
//	[render]
//	style = "compass"
//	formats = ["svg", "png"]
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
//	[log]
//	level = "warn"
//	format = "logfmt"
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	errs "github.com/matzehuels/windrose/pkg/errors"
	"github.com/matzehuels/windrose/pkg/radial"
)

// AppName names the config and cache directories.
const AppName = "windrose"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the full set of file- and environment-configurable settings.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Log    LogConfig    `toml:"log"`
}

// Log formats accepted by LogConfig.Format.
const (
	LogFormatText   = "text"
	LogFormatJSON   = "json"
	LogFormatLogfmt = "logfmt"
)

// LogConfig controls the CLI logger. --verbose overrides Level.
type LogConfig struct {
	Level  string `toml:"level" env:"WINDROSE_LOG_LEVEL"`
	Format string `toml:"format" env:"WINDROSE_LOG_FORMAT"`
}

// LayoutConfig mirrors [radial.Config].
type LayoutConfig struct {
	RingRadius    float64 `toml:"ring_radius" env:"WINDROSE_RING_RADIUS"`
	MinSiblingGap float64 `toml:"min_sibling_gap" env:"WINDROSE_MIN_SIBLING_GAP"`
	MinArcPerLeaf float64 `toml:"min_arc_per_leaf" env:"WINDROSE_MIN_ARC_PER_LEAF"`
	NodeWidth     float64 `toml:"node_width" env:"WINDROSE_NODE_WIDTH"`
	NodeHeight    float64 `toml:"node_height" env:"WINDROSE_NODE_HEIGHT"`
	EmptyLabel    string  `toml:"empty_label" env:"WINDROSE_EMPTY_LABEL"`
}

// RenderConfig holds output defaults.
type RenderConfig struct {
	Style       string   `toml:"style" env:"WINDROSE_STYLE"`
	Formats     []string `toml:"formats" env:"WINDROSE_FORMATS" envSeparator:","`
	ShowBalance bool     `toml:"show_balance" env:"WINDROSE_SHOW_BALANCE"`
	Scale       float64  `toml:"scale" env:"WINDROSE_SCALE"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend       string        `toml:"backend" env:"WINDROSE_CACHE_BACKEND"`
	Dir           string        `toml:"dir" env:"WINDROSE_CACHE_DIR"`
	RedisAddr     string        `toml:"redis_addr" env:"WINDROSE_REDIS_ADDR"`
	RedisPassword string        `toml:"redis_password" env:"WINDROSE_REDIS_PASSWORD"`
	RedisDB       int           `toml:"redis_db" env:"WINDROSE_REDIS_DB"`
	RedisRetries  int           `toml:"redis_retries" env:"WINDROSE_REDIS_RETRIES"`
	TTL           time.Duration `toml:"ttl" env:"WINDROSE_CACHE_TTL"`
}

// Default returns the built-in configuration.
func Default() Config {
	rc := radial.DefaultConfig()
	return Config{
		Layout: LayoutConfig{
			RingRadius:    rc.RingRadius,
			MinSiblingGap: rc.MinSiblingGap,
			MinArcPerLeaf: rc.MinArcPerLeaf,
			NodeWidth:     rc.NodeWidth,
			NodeHeight:    rc.NodeHeight,
			EmptyLabel:    rc.EmptyLabel,
		},
		Render: RenderConfig{
			Style:   "simple",
			Formats: []string{"svg"},
			Scale:   2.0,
		},
		Cache: CacheConfig{
			Backend:   BackendFile,
			RedisAddr:    "localhost:6379",
			RedisRetries: 3,
			TTL:          7 * 24 * time.Hour,
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatText,
		},
	}
}

// Radial converts the layout section into an engine configuration.
func (c Config) Radial() radial.Config {
	return radial.Config{
		RingRadius:    c.Layout.RingRadius,
		MinSiblingGap: c.Layout.MinSiblingGap,
		MinArcPerLeaf: c.Layout.MinArcPerLeaf,
		NodeWidth:     c.Layout.NodeWidth,
		NodeHeight:    c.Layout.NodeHeight,
		EmptyLabel:    c.Layout.EmptyLabel,
	}
}

// Load reads path (or [DefaultPath] when path is empty) over the defaults,
// then applies environment overrides and validates the result.
// An explicitly named file must exist; the default one may be absent.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			switch {
			case errors.Is(err, fs.ErrNotExist) && !explicit:
			case errors.Is(err, fs.ErrNotExist):
				return Config{}, errs.New(errs.ErrCodeFileNotFound, "config file not found: %s", path)
			default:
				return Config{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "parse config %s", path)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode parses TOML text over the defaults without consulting the
// environment.
func Decode(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "parse config")
	}
	return cfg, cfg.Validate()
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var problems []error
	bad := func(format string, args ...any) {
		problems = append(problems, errs.New(errs.ErrCodeInvalidInput, format, args...))
	}

	l := c.Layout
	if l.RingRadius <= 0 {
		bad("layout.ring_radius must be positive, got %v", l.RingRadius)
	}
	if l.MinSiblingGap < 0 || l.MinArcPerLeaf < 0 {
		bad("layout.min_sibling_gap and layout.min_arc_per_leaf must not be negative")
	}
	if l.NodeWidth <= 0 || l.NodeHeight <= 0 {
		bad("layout.node_width and layout.node_height must be positive")
	}

	r := c.Render
	if !slices.Contains([]string{"simple", "compass"}, r.Style) {
		problems = append(problems, errs.New(errs.ErrCodeInvalidStyle, "render.style %q: must be simple or compass", r.Style))
	}
	for _, f := range r.Formats {
		if !slices.Contains([]string{"svg", "png", "pdf", "json", "dot"}, f) {
			problems = append(problems, errs.New(errs.ErrCodeInvalidFormat, "render.formats: unknown format %q", f))
		}
	}
	if r.Scale <= 0 {
		bad("render.scale must be positive, got %v", r.Scale)
	}

	k := c.Cache
	if !slices.Contains([]string{BackendFile, BackendRedis, BackendNone}, k.Backend) {
		bad("cache.backend %q: must be file, redis or none", k.Backend)
	}
	if k.Backend == BackendRedis && k.RedisAddr == "" {
		bad("cache.redis_addr is required for the redis backend")
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Log.Level) {
		bad("log.level %q: must be debug, info, warn or error", c.Log.Level)
	}
	if !slices.Contains([]string{LogFormatText, LogFormatJSON, LogFormatLogfmt}, c.Log.Format) {
		bad("log.format %q: must be text, json or logfmt", c.Log.Format)
	}
	if k.RedisRetries < 0 {
		bad("cache.redis_retries must not be negative, got %d", k.RedisRetries)
	}
	if k.TTL < 0 {
		bad("cache.ttl must not be negative")
	}

	return errors.Join(problems...)
}

// =============================================================================
// Paths
// =============================================================================

// DefaultPath returns $XDG_CONFIG_HOME/windrose/config.toml, falling back to
// ~/.config/windrose/config.toml.
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns the file cache directory: the configured dir, else
// $XDG_CACHE_HOME/windrose, else ~/.cache/windrose.
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}
