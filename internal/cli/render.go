package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/windrose/pkg/cache"
	"github.com/matzehuels/windrose/pkg/pipeline"
)

// renderCommand creates the render command: import, layout and render in one step.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [map.json]",
		Short: "Lay out and render an argument map",
		Long: `Lay out and render an argument map.

The render command is a shortcut for 'layout' followed by 'visualize'. It
reads an argument map, computes its radial layout and writes one file per
requested format:

  svg   vector drawing with rings, connectors and wrapped labels
  png   the same drawing rasterized at --scale
  pdf   the SVG converted with rsvg-convert
  json  the layout document
  dot   Graphviz source with every node pinned to its radial position

With -t nodelink the svg, png and pdf outputs are drawn by Graphviz instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyConfig(cmd, &opts)
			opts.Formats = c.formats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Outline, "outline", false, "read the input as an indented outline")
	layoutFlags(cmd, &opts)
	renderFlags(cmd, &opts, &formatsStr)

	return cmd
}

// runRender executes the full pipeline and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Reading %s...", input))
	spinner.Start()

	m, err := runner.Import(ctx, input, opts)
	if err != nil {
		spinner.Stop()
		return fmt.Errorf("load map %s: %w", input, err)
	}
	spinner.SetMessage(fmt.Sprintf("Rendering %s...", vizTypeOrDefault(opts.VizType)))

	result, err := runner.Execute(ctx, m, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	prog.done(fmt.Sprintf("Rendered %d format(s)", len(result.Artifacts)))
	if nc, ok := runner.Cache.(*cache.NullCache); ok {
		c.Logger.Debug("caching disabled", "dropped", nc.Skipped())
	}

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		cacheHit:  result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit,
	}); err != nil {
		return err
	}
	printStats(result.Stats.Placed, len(result.Layout.Rings), result.Stats.Excluded(), result.CacheInfo.LayoutHit)
	return nil
}
