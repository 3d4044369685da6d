package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/windrose/pkg/graph"
	"github.com/matzehuels/windrose/pkg/render/nodelink"
	"github.com/matzehuels/windrose/pkg/render/rose/sink"
	"github.com/matzehuels/windrose/pkg/render/rose/styles"
)

// RenderFromLayout renders every requested format from a layout document.
// The layout's viz type decides the renderer; formats render concurrently.
func RenderFromLayout(ctx context.Context, l graph.Layout, opts Options) (map[string][]byte, error) {
	opts = applyLayoutMetadata(opts, l)

	var (
		mu        sync.Mutex
		artifacts = make(map[string][]byte, len(opts.Formats))
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			var data []byte
			var err error
			if l.IsNodelink() {
				data, err = renderNodelink(gctx, l, format, opts)
			} else {
				data, err = renderRadial(gctx, l, format, opts)
			}
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

// renderRadial renders one format of the wind-rose view.
func renderRadial(ctx context.Context, l graph.Layout, format string, opts Options) ([]byte, error) {
	sinkOpts, err := buildSinkOptions(opts)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatSVG:
		return sink.RenderSVG(l, sinkOpts...), nil
	case FormatPNG:
		return sink.RenderPNG(l, sinkOpts...)
	case FormatPDF:
		return sink.RenderPDF(ctx, l, sinkOpts...)
	case FormatJSON:
		return sink.RenderJSON(l)
	case FormatDOT:
		return []byte(nodelink.ToDOT(l, nodelink.Options{Detailed: opts.Detailed})), nil
	}
	return nil, fmt.Errorf("unsupported radial format: %s", format)
}

// renderNodelink renders one format of the Graphviz view.
func renderNodelink(ctx context.Context, l graph.Layout, format string, opts Options) ([]byte, error) {
	if l.DOT == "" {
		return nil, fmt.Errorf("nodelink layout missing DOT string")
	}

	switch format {
	case FormatSVG:
		return nodelink.RenderSVG(ctx, l.DOT)
	case FormatPNG:
		return nodelink.RenderPNG(ctx, l.DOT, opts.Scale)
	case FormatPDF:
		return nodelink.RenderPDF(ctx, l.DOT)
	case FormatJSON:
		return sink.RenderJSON(l)
	case FormatDOT:
		return []byte(l.DOT), nil
	}
	return nil, fmt.Errorf("unsupported nodelink format: %s", format)
}

// applyLayoutMetadata applies layout metadata to options if not already set.
// This ensures that serialized layouts preserve their original rendering settings.
func applyLayoutMetadata(opts Options, l graph.Layout) Options {
	if opts.Style == "" && l.Style != "" {
		opts.Style = l.Style
	}
	if l.VizType != "" {
		opts.VizType = l.VizType
	}
	opts.SetRenderDefaults()
	return opts
}

// buildSinkOptions translates pipeline options into sink options.
func buildSinkOptions(opts Options) ([]sink.Option, error) {
	style, err := styles.ForName(opts.Style)
	if err != nil {
		return nil, err
	}
	sinkOpts := []sink.Option{sink.WithStyle(style), sink.WithScale(opts.Scale)}
	if opts.ShowBalance {
		sinkOpts = append(sinkOpts, sink.WithBalance())
	}
	if opts.Interactive {
		sinkOpts = append(sinkOpts, sink.WithInteraction())
	}
	return sinkOpts, nil
}
