// Package sink writes radial layouts in their output formats.
//
// Supported formats:
//   - SVG: vector output with rings, polarity-colored connectors and
//     wrapped labels
//   - PNG: raster output drawn natively with fogleman/gg
//   - PDF: print-ready output (requires rsvg-convert)
//   - JSON: the engine wire format, {"positionedNodes": [...], "edges": [...]}
//
// All renderers take a [graph.Layout] plus functional options:
//
//	svg := sink.RenderSVG(l, sink.WithStyle(styles.Compass{}), sink.WithBalance())
//	png, err := sink.RenderPNG(l, sink.WithScale(2))
//
// PDF conversion requires librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [graph.Layout]: github.com/matzehuels/windrose/pkg/graph.Layout
package sink
