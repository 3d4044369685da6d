// Package cache provides byte-level caching for computed layouts and
// rendered artifacts.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: JSON entries sharded under a local directory (CLI default)
//   - [RedisCache]: shared cache backed by Redis, for multi-process use
//   - [NullCache]: caching disabled
//
// Keys are produced by a [Keyer] so that identical inputs and options always
// map to the same entry:
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.LayoutKey(cache.Hash(mapJSON), cache.LayoutKeyOpts{VizType: "radial"})
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Cache is a byte store with per-entry expiration.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Default TTLs per entry kind.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// =============================================================================
// Keys
// =============================================================================

// LayoutKeyOpts are the layout options that change the computed layout.
type LayoutKeyOpts struct {
	VizType       string  `json:"viz_type"`
	RingRadius    float64 `json:"ring_radius"`
	MinSiblingGap float64 `json:"min_sibling_gap"`
	MinArcPerLeaf float64 `json:"min_arc_per_leaf"`
	NodeWidth     float64 `json:"node_width"`
	NodeHeight    float64 `json:"node_height"`
	EmptyLabel    string  `json:"empty_label"`
	Title         string  `json:"title,omitempty"`
	Style         string  `json:"style,omitempty"`    // recorded in the document
	Detailed      bool    `json:"detailed,omitempty"` // nodelink DOT labels
}

// ArtifactKeyOpts are the render options that change an artifact.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Style       string  `json:"style"`
	ShowBalance bool    `json:"show_balance"`
	Scale       float64 `json:"scale"`
	Detailed    bool    `json:"detailed,omitempty"`
	Interactive bool    `json:"interactive,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey identifies a layout of the map with the given content hash.
	LayoutKey(mapHash string, opts LayoutKeyOpts) string
	// ArtifactKey identifies a rendering of the layout with the given content hash.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the content hash together with the options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey returns "layout:<sha256>".
func (DefaultKeyer) LayoutKey(mapHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", mapHash, opts)
}

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Hash returns the hex SHA-256 of data. Map and layout content hashes use it,
// and so does the file backend to name its shards.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey returns "kind:<sha256 of the JSON-encoded parts>". Option structs
// carry json tags so that renaming a Go field leaves existing keys valid.
func hashKey(kind string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return kind + ":" + Hash(data)
}

// Clearer is implemented by backends that can drop all of their entries.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// Pruner is implemented by backends that must evict expired entries
// themselves. Redis expires keys natively and does not need it.
type Pruner interface {
	Prune(ctx context.Context) (int, error)
}
