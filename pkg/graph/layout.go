package graph

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/matzehuels/windrose/pkg/argmap"
	"github.com/matzehuels/windrose/pkg/balance"
	"github.com/matzehuels/windrose/pkg/radial"
)

// =============================================================================
// Result ↔ Layout Conversion
// =============================================================================

// FromResult converts an engine result into a radial layout document.
// nodes is the input the result was computed from; it supplies balances and
// the excluded-node count.
func FromResult(res radial.Result, cfg radial.Config, nodes []argmap.Node) Layout {
	l := Layout{
		VizType:    VizTypeRadial,
		RingRadius: cfg.RingRadius,
		NodeWidth:  cfg.NodeWidth,
		NodeHeight: cfg.NodeHeight,
		Nodes:      make([]Node, len(res.PositionedNodes)),
		Edges:      res.Edges,
		Excluded:   len(nodes) - len(res.PositionedNodes),
	}
	if l.Edges == nil {
		l.Edges = []radial.Edge{}
	}

	for i, pn := range res.PositionedNodes {
		l.Nodes[i] = Node{
			ID:       pn.ID,
			Label:    pn.Label,
			X:        pn.Position.X,
			Y:        pn.Position.Y,
			Depth:    pn.Depth,
			Angle:    pn.Arc.Angle,
			ArcStart: pn.Arc.Start,
			ArcEnd:   pn.Arc.End,
			Data:     pn.Data,
		}
	}

	l.Bounds = bounds(l.Nodes, l.NodeWidth, l.NodeHeight)
	for d := 1; d <= res.MaxDepth(); d++ {
		l.Rings = append(l.Rings, cfg.RingRadiusAt(d))
	}

	// Only laid-out nodes get a balance.
	all := balance.ForMap(nodes)
	for _, n := range l.Nodes {
		if b, ok := all[n.ID]; ok {
			if l.Balances == nil {
				l.Balances = make(map[string]balance.Balance)
			}
			l.Balances[n.ID] = b
		}
	}
	return l
}

// Result converts the layout back into the engine's output shape.
func (l *Layout) Result() radial.Result {
	res := radial.Result{
		PositionedNodes: make([]radial.PositionedNode, len(l.Nodes)),
		Edges:           l.Edges,
	}
	if res.Edges == nil {
		res.Edges = []radial.Edge{}
	}
	for i, n := range l.Nodes {
		res.PositionedNodes[i] = radial.PositionedNode{
			ID:       n.ID,
			Position: radial.Point{X: n.X, Y: n.Y},
			Label:    n.Label,
			Data:     n.Data,
			Depth:    n.Depth,
			Arc:      radial.Arc{Start: n.ArcStart, End: n.ArcEnd, Angle: n.Angle},
		}
	}
	return res
}

func bounds(nodes []Node, w, h float64) Rect {
	if len(nodes) == 0 {
		return Rect{}
	}
	r := Rect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, n := range nodes {
		r.MinX = min(r.MinX, n.X)
		r.MinY = min(r.MinY, n.Y)
		r.MaxX = max(r.MaxX, n.X+w)
		r.MaxY = max(r.MaxY, n.Y+h)
	}
	return r
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// Validates that required fields are present for the viz type.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}

	if l.VizType == "" {
		l.VizType = VizTypeRadial
	}

	switch {
	case !l.IsRadial() && !l.IsNodelink():
		return Layout{}, fmt.Errorf("unknown viz type %q", l.VizType)
	case l.NodeWidth <= 0 || l.NodeHeight <= 0:
		return Layout{}, fmt.Errorf("layout must have a positive node size")
	case l.IsNodelink() && l.DOT == "":
		return Layout{}, fmt.Errorf("nodelink layout must contain DOT string")
	}

	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
