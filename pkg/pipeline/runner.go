package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/windrose/pkg/argmap"
	"github.com/matzehuels/windrose/pkg/cache"
	"github.com/matzehuels/windrose/pkg/graph"
	"github.com/matzehuels/windrose/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the per-kind default expiration when positive.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the layout → render pipeline on an imported map with caching.
func (r *Runner) Execute(ctx context.Context, m argmap.Map, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		MapHash:   HashMap(m),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Layout
	layoutStart := time.Now()
	layout, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, m, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = layout
	result.Stats.NodeCount = len(m.Nodes)
	result.Stats.Placed = len(layout.Nodes)
	result.Stats.EdgeCount = len(layout.Edges)
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"nodes", result.Stats.Placed,
		"excluded", result.Stats.Excluded(),
		"rings", len(layout.Rings),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, layout, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// HashMap returns the content hash of a map, used in layout cache keys.
func HashMap(m argmap.Map) string {
	data, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}

// ComputeLayoutWithCacheInfo computes a layout with caching and returns cache hit info.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, m argmap.Map, opts Options) (graph.Layout, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return graph.Layout{}, false, err
	}

	cacheKey := r.Keyer.LayoutKey(HashMap(m), opts.LayoutKeyOpts())
	cacheHooks := observability.Cache()

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := graph.UnmarshalLayout(data)
			if err == nil {
				cacheHooks.OnCacheHit(ctx, observability.KeyTypeLayout)
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
			opts.Logger.Debug("discarding unreadable cached layout", "error", err)
		} else if err != nil {
			opts.Logger.Debug("layout cache unavailable", "error", err)
		}
		cacheHooks.OnCacheMiss(ctx, observability.KeyTypeLayout)
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.VizType, len(m.Nodes))
	start := time.Now()
	layout, err := GenerateLayout(m, opts)
	hooks.OnLayoutComplete(ctx, opts.VizType, len(layout.Nodes), time.Since(start), err)
	if err != nil {
		return graph.Layout{}, false, err
	}

	// Cache the result
	if data, err := graph.MarshalLayout(layout); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, r.ttl(cache.TTLLayout)); err != nil {
			opts.Logger.Debug("layout not cached", "error", err)
		} else {
			cacheHooks.OnCacheSet(ctx, observability.KeyTypeLayout, len(data))
		}
	}

	return layout, false, nil // Cache miss
}

// ComputeLayout is a convenience wrapper that calls ComputeLayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, m argmap.Map, opts Options) (graph.Layout, error) {
	layout, _, err := r.ComputeLayoutWithCacheInfo(ctx, m, opts)
	return layout, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// Only formats missing from the cache are rendered.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, layout graph.Layout, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	opts = applyLayoutMetadata(opts, layout)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	// Compute cache key from layout data
	layoutData, err := graph.MarshalLayout(layout)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)
	cacheHooks := observability.Cache()

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		if !opts.Refresh {
			key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				cacheHooks.OnCacheHit(ctx, observability.KeyTypeArtifact)
				artifacts[format] = data
				continue
			}
			cacheHooks.OnCacheMiss(ctx, observability.KeyTypeArtifact)
		}
		missing = append(missing, format)
	}

	if len(missing) == 0 {
		return artifacts, true, nil // All artifacts from cache
	}

	renderOpts := opts
	renderOpts.Formats = missing

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, missing)
	start := time.Now()
	rendered, err := RenderFromLayout(ctx, layout, renderOpts)
	hooks.OnRenderComplete(ctx, missing, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		artifacts[format] = data
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, r.ttl(cache.TTLArtifact)); err == nil {
			cacheHooks.OnCacheSet(ctx, observability.KeyTypeArtifact, len(data))
		}
	}

	return artifacts, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, layout graph.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, layout, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) ttl(def time.Duration) time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return def
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
