package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/windrose/pkg/argmap"
	"github.com/matzehuels/windrose/pkg/pipeline"
)

// importCommand creates the import command for converting outlines to maps.
func (c *CLI) importCommand() *cobra.Command {
	var (
		output string
		title  string
	)
	opts := pipeline.Options{Outline: true}

	cmd := &cobra.Command{
		Use:   "import [outline.txt]",
		Short: "Convert an indented outline into an argument map",
		Long: `Convert an indented outline into an argument map.

The first non-blank line is the thesis. Every further line is indented under
its parent and starts with a marker:

  +  tailwind (supports its parent)
  -  headwind (opposes its parent)
  ~  neutral   (* is accepted too)

An optional strength in brackets follows the marker:

  Remote work should be the default
      + [70] Commutes cost hours every week
      - [40] Onboarding is harder

The map is written as JSON, TOML or YAML depending on the -o extension, or as
JSON to stdout when -o is omitted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Logger = c.Logger
			return c.runImport(withLogger(cmd.Context(), c.Logger), args[0], opts, title, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.json, .toml, .yaml); default stdout")
	cmd.Flags().StringVar(&title, "title", "", "map title")
	cmd.Flags().BoolVar(&opts.Deterministic, "deterministic", false, "derive node IDs from the outline so re-imports are stable")

	return cmd
}

func (c *CLI) runImport(ctx context.Context, input string, opts pipeline.Options, title, output string) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, true)
	if err != nil {
		return err
	}
	defer runner.Close()

	m, err := runner.Import(ctx, input, opts)
	if err != nil {
		return fmt.Errorf("import %s: %w", input, err)
	}
	if title != "" {
		m.Title = title
	}
	logger.Debug("imported outline", "nodes", len(m.Nodes), "deterministic", opts.Deterministic)

	if output == "" || output == "-" {
		w, _ := openOutput("")
		return argmap.Write(w, m, argmap.FormatJSON)
	}
	if err := argmap.WriteFile(m, output); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Imported %d claims", len(m.Nodes))
	printFile(output)
	printNewline()
	printNextStep("Render", appName+" render "+output)
	return nil
}
