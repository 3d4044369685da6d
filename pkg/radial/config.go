package radial

// Default tunables.
const (
	DefaultRingRadius    = 220.0
	DefaultMinSiblingGap = 0.15 // radians
	DefaultMinArcPerLeaf = 0.25 // radians per leaf
	DefaultNodeWidth     = 200.0
	DefaultNodeHeight    = 60.0
	DefaultEmptyLabel    = "Untitled claim"
)

// Config holds the geometric tunables of an [Engine].
type Config struct {
	RingRadius    float64 `json:"ring_radius"`      // distance between consecutive rings
	MinSiblingGap float64 `json:"min_sibling_gap"`  // minimum arc per sibling
	MinArcPerLeaf float64 `json:"min_arc_per_leaf"` // first-ring widening threshold
	NodeWidth     float64 `json:"node_width"`
	NodeHeight    float64 `json:"node_height"`
	EmptyLabel    string  `json:"empty_label"` // label for nodes without a statement
}

// DefaultConfig returns the standard tunables.
func DefaultConfig() Config {
	return Config{
		RingRadius:    DefaultRingRadius,
		MinSiblingGap: DefaultMinSiblingGap,
		MinArcPerLeaf: DefaultMinArcPerLeaf,
		NodeWidth:     DefaultNodeWidth,
		NodeHeight:    DefaultNodeHeight,
		EmptyLabel:    DefaultEmptyLabel,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.RingRadius <= 0 {
		c.RingRadius = d.RingRadius
	}
	if c.MinSiblingGap <= 0 {
		c.MinSiblingGap = d.MinSiblingGap
	}
	if c.MinArcPerLeaf <= 0 {
		c.MinArcPerLeaf = d.MinArcPerLeaf
	}
	if c.NodeWidth <= 0 {
		c.NodeWidth = d.NodeWidth
	}
	if c.NodeHeight <= 0 {
		c.NodeHeight = d.NodeHeight
	}
	if c.EmptyLabel == "" {
		c.EmptyLabel = d.EmptyLabel
	}
	return c
}

// Option configures an [Engine].
type Option func(*Config)

// WithRingRadius sets the spacing between rings.
func WithRingRadius(r float64) Option {
	return func(c *Config) { c.RingRadius = r }
}

// WithMinSiblingGap sets the minimum arc, in radians, any sibling receives.
func WithMinSiblingGap(rad float64) Option {
	return func(c *Config) { c.MinSiblingGap = rad }
}

// WithMinArcPerLeaf sets the per-leaf arc used to widen the first ring.
func WithMinArcPerLeaf(rad float64) Option {
	return func(c *Config) { c.MinArcPerLeaf = rad }
}

// WithNodeSize sets the rectangle every node occupies.
func WithNodeSize(w, h float64) Option {
	return func(c *Config) {
		c.NodeWidth = w
		c.NodeHeight = h
	}
}

// WithEmptyLabel sets the label used for nodes with an empty statement.
func WithEmptyLabel(label string) Option {
	return func(c *Config) { c.EmptyLabel = label }
}

// WithConfig replaces all tunables at once. Zero fields take defaults.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}
