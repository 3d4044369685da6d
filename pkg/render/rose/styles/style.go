package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/windrose/pkg/argmap"
	"github.com/matzehuels/windrose/pkg/balance"
	"github.com/matzehuels/windrose/pkg/graph"
)

// Style defines the visual appearance for radial rendering.
// Implementations control how rings, connectors, claims and balances are drawn.
type Style interface {
	// Name returns the style identifier used in configs and cache keys.
	Name() string
	// RenderDefs writes SVG <defs> content (markers, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderBackdrop writes anything drawn beneath the rings.
	RenderBackdrop(buf *bytes.Buffer, v Viewport)
	// RenderRing writes the SVG for one depth ring.
	RenderRing(buf *bytes.Buffer, r Ring)
	// RenderEdge writes the SVG for a parent-child connector.
	RenderEdge(buf *bytes.Buffer, e Edge)
	// RenderBlock writes the SVG for a claim's rectangle.
	RenderBlock(buf *bytes.Buffer, b Block)
	// RenderText writes the SVG for a claim's wrapped label.
	RenderText(buf *bytes.Buffer, b Block)
	// RenderBalance writes the tailwind/headwind bar beneath a claim.
	RenderBalance(buf *bytes.Buffer, b Block)
}

// ForName returns the style registered under name.
func ForName(name string) (Style, error) {
	switch name {
	case "", graph.StyleSimple:
		return Simple{}, nil
	case graph.StyleCompass:
		return Compass{}, nil
	}
	return nil, fmt.Errorf("unknown style %q (want %s or %s)", name, graph.StyleSimple, graph.StyleCompass)
}

// Viewport is the visible canvas region in layout coordinates.
type Viewport struct {
	MinX, MinY    float64
	Width, Height float64
	MaxRing       float64 // radius of the outermost ring, 0 when there is none
}

// Ring is one depth ring centered on the thesis.
type Ring struct {
	Depth  int
	Radius float64
}

// Block contains everything needed to draw a single claim.
type Block struct {
	ID         string
	Label      string
	Statement  string // full text for the hover title
	X, Y, W, H float64
	CX, CY     float64
	Depth      int
	Polarity   argmap.Polarity
	Strength   *int
	URL        string
	Balance    *balance.Balance // nil when the claim has no balance or bars are off
}

// Edge is a cubic bezier from a parent center to a child center.
type Edge struct {
	ID             string
	FromID, ToID   string
	X1, Y1         float64
	C1X, C1Y       float64
	C2X, C2Y       float64
	X2, Y2         float64
	Polarity       *argmap.Polarity
	StrengthFactor float64 // 0..1, scales the stroke width
}

// Polarity colors.
const (
	ColorTailwind = "#2e7d32"
	ColorHeadwind = "#c62828"
	ColorNeutral  = "#9e9e9e"
)

// PolarityColor returns the connector color for a child polarity.
// A nil or neutral polarity is gray.
func PolarityColor(p *argmap.Polarity) string {
	if p == nil {
		return ColorNeutral
	}
	switch *p {
	case argmap.Tailwind:
		return ColorTailwind
	case argmap.Headwind:
		return ColorHeadwind
	}
	return ColorNeutral
}

// Balance bar geometry, relative to the claim rectangle.
const (
	BalanceBarGap    = 6.0
	BalanceBarHeight = 6.0
)

// EdgeWidth maps a strength factor to a stroke width.
func EdgeWidth(e Edge) float64 {
	return 1.5 + 3*max(0, min(1, e.StrengthFactor))
}
