// Package graph provides the serialized layout document for argument maps.
//
// This package defines the canonical wire format for Windrose layouts, used
// for layout files, caching and the visualize command.
//
// # Architecture
//
// The package sits at the serialization boundary between the layout engine
// and renderers:
//
//   - pkg/argmap.Map: input argument maps
//   - pkg/radial.Result: engine output (positioned nodes and edges)
//   - [Layout]: engine output plus geometry, ring radii and balances (this package)
//
// Use [FromResult] and [Layout.Result] to convert between them.
//
// # Constants
//
// This package is the single source of truth for visualization constants:
//
//	graph.VizTypeRadial     // "radial"
//	graph.VizTypeNodelink   // "nodelink"
//	graph.StyleSimple       // "simple"
//	graph.StyleCompass      // "compass"
//
// # Layout Serialization
//
// Layouts are discriminated by VizType:
//
//	layout, _ := graph.ReadLayoutFile("map.layout.json")
//	if layout.IsNodelink() {
//	    // layout.DOT holds pinned Graphviz source
//	}
//	for _, n := range layout.Nodes {
//	    c := layout.Center(n)
//	}
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package graph
