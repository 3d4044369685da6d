// Package render provides visualization rendering for argument maps.
//
// # Overview
//
// This package contains the rendering pipeline that turns a computed
// [graph.Layout] into visual output. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Radial "wind rose" rendering (in [rose] subpackages)
//   - Node-link diagrams (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). Radial PNGs are drawn
// natively and do not need it.
//
//	svg := sink.RenderSVG(layout)
//	pdf, err := render.ToPDF(ctx, svg)
//
// # Radial Rendering
//
// The [rose/sink] package writes SVG, PNG, PDF and JSON; the [rose/styles]
// package holds the scene model and the "simple" and "compass" styles.
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the same tree through Graphviz with every
// claim pinned to its radial position.
//
//	dot := nodelink.ToDOT(layout, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [graph.Layout]: github.com/matzehuels/windrose/pkg/graph.Layout
// [rose]: github.com/matzehuels/windrose/pkg/render/rose
// [rose/sink]: github.com/matzehuels/windrose/pkg/render/rose/sink
// [rose/styles]: github.com/matzehuels/windrose/pkg/render/rose/styles
// [nodelink]: github.com/matzehuels/windrose/pkg/render/nodelink
package render
