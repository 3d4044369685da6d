package pipeline

import (
	"errors"

	"github.com/matzehuels/windrose/pkg/argmap"
	errs "github.com/matzehuels/windrose/pkg/errors"
	"github.com/matzehuels/windrose/pkg/graph"
	"github.com/matzehuels/windrose/pkg/radial"
	"github.com/matzehuels/windrose/pkg/render/nodelink"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout computes the layout document for any visualization type.
//
// Both radial and nodelink layouts carry the positioned nodes, edges, rings
// and balances. Nodelink layouts additionally embed the pinned DOT source.
func GenerateLayout(m argmap.Map, opts Options) (graph.Layout, error) {
	opts.SetLayoutDefaults()

	engine := radial.NewEngine(radial.WithConfig(opts.RadialConfig()))
	res, err := engine.Compute(m.Nodes)
	if err != nil {
		return graph.Layout{}, classifyEngineError(err)
	}

	l := graph.FromResult(res, engine.Config(), m.Nodes)
	l.Title = m.Title
	if opts.Title != "" {
		l.Title = opts.Title
	}
	l.Style = opts.Style

	if l.Excluded > 0 {
		opts.Logger.Warn("nodes left out of layout", "excluded", l.Excluded, "hint", "run `windrose check` for details")
	}

	if opts.IsNodelink() {
		l.VizType = graph.VizTypeNodelink
		l.Engine = graph.EngineNeato
		l.DOT = nodelink.ToDOT(l, nodelink.Options{Detailed: opts.Detailed})
	}
	return l, nil
}

// classifyEngineError maps engine sentinels to coded errors.
func classifyEngineError(err error) error {
	switch {
	case errors.Is(err, radial.ErrMultipleRoots):
		return errs.Wrap(errs.ErrCodeMultipleRoots, err, "a map needs exactly one thesis")
	case errors.Is(err, radial.ErrDuplicateID):
		return errs.Wrap(errs.ErrCodeDuplicateNode, err, "node IDs must be unique")
	}
	return err
}
