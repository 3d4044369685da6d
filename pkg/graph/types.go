package graph

import (
	"github.com/matzehuels/windrose/pkg/argmap"
	"github.com/matzehuels/windrose/pkg/balance"
	"github.com/matzehuels/windrose/pkg/radial"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Visualization types.
const (
	VizTypeRadial   = "radial"
	VizTypeNodelink = "nodelink"
)

// Visual styles for rendering.
const (
	StyleSimple  = "simple"
	StyleCompass = "compass"
)

// Graphviz engine used for nodelink layouts with pinned positions.
const EngineNeato = "neato"

// =============================================================================
// Layout - Unified Visualization Format
// =============================================================================

// Layout is the serialized form of a computed radial layout.
//
// Shared fields (both viz types):
//   - RingRadius, NodeWidth, NodeHeight: the geometry the layout was computed with
//   - Bounds: bounding box of all node rectangles
//   - Rings: radius of every populated ring (depth 1 onward)
//   - Nodes, Edges: positioned nodes and polarity edges
//   - Balances: tailwind/headwind summaries keyed by node ID
//
// Nodelink ("nodelink"):
//   - DOT: Graphviz source with every node pinned to its radial position
//   - Engine: Graphviz layout engine (always "neato")
type Layout struct {
	// Discriminator
	VizType string `json:"viz_type"`

	Title string `json:"title,omitempty"`
	Style string `json:"style,omitempty"`

	// Geometry
	RingRadius float64   `json:"ring_radius"`
	NodeWidth  float64   `json:"node_width"`
	NodeHeight float64   `json:"node_height"`
	Bounds     Rect      `json:"bounds"`
	Rings      []float64 `json:"rings,omitempty"`

	Nodes    []Node                     `json:"nodes"`
	Edges    []radial.Edge              `json:"edges"`
	Balances map[string]balance.Balance `json:"balances,omitempty"`
	Excluded int                        `json:"excluded,omitempty"` // input nodes left out

	// Nodelink-specific
	DOT    string `json:"dot,omitempty"`
	Engine string `json:"engine,omitempty"`
}

// IsRadial returns true if this is a radial layout.
func (l *Layout) IsRadial() bool { return l.VizType == VizTypeRadial }

// IsNodelink returns true if this is a nodelink layout.
func (l *Layout) IsNodelink() bool { return l.VizType == VizTypeNodelink }

// Center returns the center of n's rectangle.
func (l *Layout) Center(n Node) (x, y float64) {
	return n.X + l.NodeWidth/2, n.Y + l.NodeHeight/2
}

// Node looks up a node by ID.
func (l *Layout) Node(id string) (Node, bool) {
	for _, n := range l.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// =============================================================================
// Node - Positioned Claim
// =============================================================================

// Node is a positioned claim. X and Y are the top-left corner of its rectangle.
type Node struct {
	ID       string      `json:"id"`
	Label    string      `json:"label"`
	X        float64     `json:"x"`
	Y        float64     `json:"y"`
	Depth    int         `json:"depth"`
	Angle    float64     `json:"angle"`
	ArcStart float64     `json:"arc_start"`
	ArcEnd   float64     `json:"arc_end"`
	Data     argmap.Node `json:"data"`
}

// IsRoot returns true for the thesis.
func (n *Node) IsRoot() bool { return n.Depth == 0 }

// Polarity returns the node's polarity, or "" when unset.
func (n *Node) Polarity() argmap.Polarity { return n.Data.Polarity }

// URL returns the node's source link, if any.
func (n *Node) URL() string {
	u, _ := n.Data.Meta[argmap.MetaURL].(string)
	return u
}

// =============================================================================
// Rect - Bounding Box
// =============================================================================

// Rect is an axis-aligned rectangle.
type Rect struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width returns MaxX - MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }
