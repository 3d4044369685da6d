// Package nodelink renders argument maps as node-link diagrams through
// Graphviz.
//
// # Overview
//
// The radial layout already fixes where every claim goes, so the DOT source
// pins each node with pos="x,y!" and Graphviz's neato engine only routes the
// connectors. The result is the same picture as the radial view drawn in
// Graphviz's visual language, and the DOT text can be edited by hand.
//
// # Usage
//
//	dot := nodelink.ToDOT(layout, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Options
//
//   - Detailed: when true, labels carry polarity and strength under the
//     statement
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
