package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/windrose/pkg/argmap"
	"github.com/matzehuels/windrose/pkg/graph"
	"github.com/matzehuels/windrose/pkg/render"
	"github.com/matzehuels/windrose/pkg/render/rose/styles"
)

// Graphviz positions and sizes are in inches.
const pointsPerInch = 72.0

const labelChars = 28

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed appends polarity and strength to node labels.
	// When false, only the wrapped label is shown.
	Detailed bool
}

// ToDOT converts a radial layout to Graphviz DOT with every node pinned to its
// radial center. The y axis is flipped because Graphviz grows upward.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(l graph.Layout, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  layout=%s;\n", graph.EngineNeato)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=true;\n")
	buf.WriteString("  overlap=true;\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	fmt.Fprintf(&buf, "  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, fixedsize=true, width=%s, height=%s];\n",
		inches(l.NodeWidth), inches(l.NodeHeight))
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("\n")

	for _, n := range l.Nodes {
		cx, cy := l.Center(n)
		attrs := []string{
			fmt.Sprintf("label=%q", fmtLabel(n, opts.Detailed)),
			fmt.Sprintf("pos=\"%s,%s!\"", inches(cx), inches(-cy)),
		}
		attrs = append(attrs, fmtAttrs(n)...)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range l.Edges {
		width := 1.0
		if child, ok := l.Node(e.Target); ok {
			width += 2 * float64(child.Data.StrengthValue()) / argmap.MaxStrength
		}
		fmt.Fprintf(&buf, "  %q -> %q [color=%q, penwidth=%.2f];\n",
			e.Source, e.Target, styles.PolarityColor(e.Data.ChildPolarity), width)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func inches(points float64) string {
	return strconv.FormatFloat(points/pointsPerInch, 'f', 4, 64)
}

func fmtLabel(n graph.Node, detailed bool) string {
	label := strings.Join(styles.Wrap(n.Label, labelChars, 3), "\n")
	if !detailed || n.IsRoot() {
		return label
	}

	var parts []string
	if p := n.Polarity(); p != "" {
		parts = append(parts, string(p))
	}
	if n.Data.Strength != nil {
		parts = append(parts, fmt.Sprintf("strength: %d", *n.Data.Strength))
	}
	if len(parts) == 0 {
		return label
	}
	return label + "\n" + strings.Join(parts, ", ")
}

func fmtAttrs(n graph.Node) []string {
	if n.IsRoot() {
		return []string{"penwidth=2.5", "fillcolor=\"#eceff1\""}
	}
	p := n.Polarity()
	attrs := []string{fmt.Sprintf("color=%q", styles.PolarityColor(&p))}
	if u := n.URL(); u != "" {
		attrs = append(attrs, fmt.Sprintf("URL=%q", u))
	}
	return attrs
}

// RenderSVG lays out a DOT graph with neato and renders it to SVG.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
