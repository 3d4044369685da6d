// Package pkg provides the core libraries for Windrose argument-map layout.
//
// # Overview
//
// Windrose draws an argument map radially. The thesis sits at the center and
// each generation of claims that support it (tailwind), oppose it (headwind)
// or merely qualify it (neutral) lives on its own concentric ring. Every
// claim owns an angular arc sized by the number of leaves below it, and its
// children split that arc among themselves.
//
// The pkg directory is organized into four main areas:
//
//  1. Domain: [argmap], [radial], [balance]
//  2. Serialization: [graph]
//  3. Rendering: [render], [render/rose/sink], [render/rose/styles], [render/nodelink]
//  4. Orchestration and infrastructure: [pipeline], [cache], [config],
//     [errors], [observability], [buildinfo]
//
// # Architecture
//
// The typical data flow through Windrose:
//
//	Map file (JSON, TOML, YAML) or indented outline
//	         ↓
//	    [argmap] package (decode + validate nodes)
//	         ↓
//	    [radial] package (tree → arcs → positions)
//	         ↓
//	    [graph] package (layout document with balances and rings)
//	         ↓
//	    [render/rose/sink] or [render/nodelink]
//	         ↓
//	    SVG/PNG/PDF/JSON/DOT output
//
// # Quick Start
//
// Lay out a map and render it to SVG:
//
//	import (
//	    "github.com/matzehuels/windrose/pkg/argmap"
//	    "github.com/matzehuels/windrose/pkg/graph"
//	    "github.com/matzehuels/windrose/pkg/radial"
//	    "github.com/matzehuels/windrose/pkg/render/rose/sink"
//	)
//
//	m, _ := argmap.ReadFile("remote-work.json")
//	engine := radial.NewEngine()
//	res, _ := engine.Compute(m.Nodes)
//	l := graph.FromResult(res, engine.Config(), m.Nodes)
//	svg := sink.RenderSVG(l, sink.WithBalance())
//
// Or let the pipeline do the same with caching:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, _ := runner.Execute(ctx, m, pipeline.Options{Formats: []string{"svg", "png"}})
//
// # Main Packages
//
// [radial] - The pure layout engine. No I/O, no logging; safe to call from
// many goroutines at once.
//
// [balance] - Sums the strength of a claim's tailwind and headwind children.
//
// [pipeline] - Import → layout → render with cache lookups at each stage,
// used by the CLI.
//
// [cache] - File, Redis and null backends behind one byte-level interface.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/radial/...     # Specific package
//	go test -run Example ./...   # Examples only
//
// Redis cache tests run only when WINDROSE_TEST_REDIS_ADDR is set.
//
// [argmap]: https://pkg.go.dev/github.com/matzehuels/windrose/pkg/argmap
// [radial]: https://pkg.go.dev/github.com/matzehuels/windrose/pkg/radial
// [balance]: https://pkg.go.dev/github.com/matzehuels/windrose/pkg/balance
// [graph]: https://pkg.go.dev/github.com/matzehuels/windrose/pkg/graph
// [render]: https://pkg.go.dev/github.com/matzehuels/windrose/pkg/render
// [render/rose/sink]: https://pkg.go.dev/github.com/matzehuels/windrose/pkg/render/rose/sink
// [render/rose/styles]: https://pkg.go.dev/github.com/matzehuels/windrose/pkg/render/rose/styles
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/windrose/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/windrose/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/windrose/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/windrose/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/windrose/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/windrose/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/windrose/pkg/buildinfo
package pkg
