package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/windrose/pkg/graph"
	"github.com/matzehuels/windrose/pkg/pipeline"
)

// visualizeCommand renders a layout document written by `windrose layout`.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "visualize [map.layout.json]",
		Short: "Render a computed layout document",
		Long: `Render a layout document produced by 'windrose layout'.

Positions, rings and balances are read from the document as-is, so a layout
can be hand-tuned between the two steps. The style recorded in the document
is used unless --style is given. Use 'render' to go from a map straight to
output files.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			styleFlag := cmd.Flags().Changed("style")
			c.applyConfig(cmd, &opts)
			opts.Formats = c.formats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if !styleFlag {
				opts.Style = "" // defer to the document
			}
			return c.runVisualize(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "ignore cached results")
	renderFlags(cmd, &opts, &formatsStr)

	return cmd
}

// runVisualize renders the layout at input. An empty opts.Style takes the
// document's style, then the configured one.
func (c *CLI) runVisualize(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	layout, err := graph.ReadLayoutFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}
	opts.VizType = vizTypeOrDefault(layout.VizType)
	if opts.Style == "" {
		opts.Style = layout.Style
	}
	if opts.Style == "" {
		opts.Style = c.Config.Render.Style
	}
	if layout.Excluded > 0 {
		printWarning("%d node(s) were left out of this layout; run 'windrose check' on the map", layout.Excluded)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s (%s)...", opts.VizType, opts.Style))
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, layout, opts)
	if err != nil {
		spinner.StopWithError("Visualization failed")
		return fmt.Errorf("visualize: %w", err)
	}
	spinner.Stop()

	if err := writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		cacheHit:  cacheHit,
	}); err != nil {
		return err
	}
	printStats(len(layout.Nodes), len(layout.Rings), layout.Excluded, cacheHit)
	return nil
}
