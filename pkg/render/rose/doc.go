// Package rose renders radial argument maps as a "wind rose": the thesis in
// the middle, each ring of replies further out, and connectors colored by
// whether a claim pushes its parent forward (tailwind) or holds it back
// (headwind).
//
// Rendering is split into two subpackages:
//
//   - [styles]: the scene model ([styles.Block], [styles.Edge], [styles.Ring])
//     and the visual styles that draw it ("simple", "compass")
//   - [sink]: output formats (SVG, PNG, PDF, JSON) built from a
//     [graph.Layout]
//
// Typical usage:
//
//	svg := sink.RenderSVG(layout, sink.WithStyle(styles.Compass{}), sink.WithBalance())
//	png, err := sink.RenderPNG(layout, sink.WithScale(2))
//
// [styles]: github.com/matzehuels/windrose/pkg/render/rose/styles
// [sink]: github.com/matzehuels/windrose/pkg/render/rose/sink
// [graph.Layout]: github.com/matzehuels/windrose/pkg/graph.Layout
package rose
