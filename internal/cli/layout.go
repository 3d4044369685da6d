package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/windrose/pkg/graph"
	"github.com/matzehuels/windrose/pkg/pipeline"
)

// layoutCommand creates the layout command for computing radial layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [map.json]",
		Short: "Compute a radial layout from an argument map",
		Long: `Compute a radial layout from an argument map.

The layout command takes an argument map (JSON, TOML or YAML, or an indented
outline) and places every claim on its ring. The output is a layout.json file
(same format as 'render -f json') that can be rendered to SVG/PNG/PDF using the
'visualize' command.

Supports both radial (-t radial) and nodelink (-t nodelink) visualization types.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyConfig(cmd, &opts)
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Outline, "outline", false, "read the input as an indented outline")
	layoutFlags(cmd, &opts)

	return cmd
}

// runLayout loads the map, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	m, err := runner.Import(ctx, input, opts)
	if err != nil {
		return fmt.Errorf("load map %s: %w", input, err)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", vizTypeOrDefault(opts.VizType)))
	spinner.Start()

	layout, cacheHit, err := runner.ComputeLayoutWithCacheInfo(ctx, m, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = stem(input) + ".layout.json"
	}

	if err := graph.WriteLayoutFile(layout, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(layout.Nodes), len(layout.Rings), layout.Excluded, cacheHit)
	printNewline()
	printNextStep("Render", appName+" visualize "+outputPath)

	return nil
}

func vizTypeOrDefault(v string) string {
	if v == "" {
		return pipeline.DefaultVizType
	}
	return v
}
