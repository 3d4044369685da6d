package sink

import (
	"math"

	"github.com/matzehuels/windrose/pkg/argmap"
	"github.com/matzehuels/windrose/pkg/graph"
	"github.com/matzehuels/windrose/pkg/render/rose/styles"
)

const (
	framePadding = 40.0
	titleHeight  = 36.0
)

// scene is a layout resolved into drawable primitives, shared by the SVG and
// PNG sinks.
type scene struct {
	title  string
	view   styles.Viewport
	rings  []styles.Ring
	edges  []styles.Edge
	blocks []styles.Block
}

func buildScene(l graph.Layout, showBalance bool) scene {
	s := scene{title: l.Title}

	for i, r := range l.Rings {
		s.rings = append(s.rings, styles.Ring{Depth: i + 1, Radius: r})
	}

	byID := make(map[string]graph.Node, len(l.Nodes))
	for _, n := range l.Nodes {
		byID[n.ID] = n
		s.blocks = append(s.blocks, buildBlock(l, n, showBalance))
	}

	for _, e := range l.Edges {
		parent, ok1 := byID[e.Source]
		child, ok2 := byID[e.Target]
		if !ok1 || !ok2 {
			continue
		}
		s.edges = append(s.edges, buildEdge(l, e.ID, parent, child, e.Data.ChildPolarity))
	}

	s.view = viewport(l, s, showBalance)
	return s
}

func buildBlock(l graph.Layout, n graph.Node, showBalance bool) styles.Block {
	cx, cy := l.Center(n)
	b := styles.Block{
		ID:        n.ID,
		Label:     n.Label,
		Statement: n.Data.Statement,
		X:         n.X,
		Y:         n.Y,
		W:         l.NodeWidth,
		H:         l.NodeHeight,
		CX:        cx,
		CY:        cy,
		Depth:     n.Depth,
		Polarity:  n.Data.Polarity,
		Strength:  n.Data.Strength,
		URL:       n.URL(),
	}
	if b.Statement == "" {
		b.Statement = n.Label
	}
	if showBalance {
		if bal, ok := l.Balances[n.ID]; ok {
			b.Balance = &bal
		}
	}
	return b
}

// buildEdge bends the connector along the rings: both control points sit on
// the circle halfway between the two rings, one at the parent's angle and one
// at the child's.
func buildEdge(l graph.Layout, id string, parent, child graph.Node, p *argmap.Polarity) styles.Edge {
	x1, y1 := l.Center(parent)
	x2, y2 := l.Center(child)

	childAngle := math.Atan2(y2, x2)
	parentAngle := math.Atan2(y1, x1)
	if parent.Depth == 0 {
		parentAngle = childAngle
	}
	mid := l.RingRadius * (float64(parent.Depth) + float64(child.Depth)) / 2

	return styles.Edge{
		ID:             id,
		FromID:         parent.ID,
		ToID:           child.ID,
		X1:             x1,
		Y1:             y1,
		C1X:            mid * math.Cos(parentAngle),
		C1Y:            mid * math.Sin(parentAngle),
		C2X:            mid * math.Cos(childAngle),
		C2Y:            mid * math.Sin(childAngle),
		X2:             x2,
		Y2:             y2,
		Polarity:       p,
		StrengthFactor: float64(child.Data.StrengthValue()) / argmap.MaxStrength,
	}
}

func viewport(l graph.Layout, s scene, showBalance bool) styles.Viewport {
	var maxRing float64
	if n := len(l.Rings); n > 0 {
		maxRing = l.Rings[n-1]
	}

	minX, minY := -maxRing, -maxRing
	maxX, maxY := maxRing, maxRing
	if len(l.Nodes) > 0 {
		minX = min(minX, l.Bounds.MinX)
		minY = min(minY, l.Bounds.MinY)
		maxX = max(maxX, l.Bounds.MaxX)
		maxY = max(maxY, l.Bounds.MaxY)
	}
	if showBalance {
		maxY += styles.BalanceBarGap + styles.BalanceBarHeight
	}

	minX -= framePadding
	minY -= framePadding
	maxX += framePadding
	maxY += framePadding
	if s.title != "" {
		minY -= titleHeight
	}

	return styles.Viewport{
		MinX:    minX,
		MinY:    minY,
		Width:   maxX - minX,
		Height:  maxY - minY,
		MaxRing: maxRing,
	}
}
