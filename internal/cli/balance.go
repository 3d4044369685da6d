package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/windrose/pkg/argmap"
	"github.com/matzehuels/windrose/pkg/balance"
	errs "github.com/matzehuels/windrose/pkg/errors"
	"github.com/matzehuels/windrose/pkg/pipeline"
	"github.com/matzehuels/windrose/pkg/radial"
	"github.com/matzehuels/windrose/pkg/render/rose/styles"
)

const (
	barWidth   = 24
	labelWidth = 36
)

// balanceCommand creates the balance command.
func (c *CLI) balanceCommand() *cobra.Command {
	var (
		nodeID  string
		asJSON  bool
		outline bool
	)

	cmd := &cobra.Command{
		Use:   "balance [map.json]",
		Short: "Show how strongly each claim is supported or opposed",
		Long: `Show how strongly each claim is supported or opposed.

For every claim with weighted children, balance sums the strength of its
tailwind (supporting) and headwind (opposing) children and draws the share of
tailwind as a bar. Claims are listed in layout order, indented by ring.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBalance(cmd.Context(), args[0], nodeID, asJSON, outline)
		},
	}

	cmd.Flags().StringVar(&nodeID, "node", "", "only show the balance of this node")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print balances as JSON")
	cmd.Flags().BoolVar(&outline, "outline", false, "read the input as an indented outline")

	return cmd
}

func (c *CLI) runBalance(ctx context.Context, input, nodeID string, asJSON, outline bool) error {
	runner, err := c.newRunner(ctx, true)
	if err != nil {
		return err
	}
	defer runner.Close()

	m, err := runner.Import(ctx, input, pipeline.Options{Outline: outline, Logger: c.Logger})
	if err != nil {
		return fmt.Errorf("load map %s: %w", input, err)
	}

	if nodeID != "" {
		n, ok := argmap.Find(m.Nodes, nodeID)
		if !ok {
			return errs.New(errs.ErrCodeNotFound, "node %q not found in %s", nodeID, input)
		}
		b, ok := balance.ForNode(m.Nodes, nodeID)
		if asJSON {
			return printJSON(map[string]any{"id": nodeID, "balance": nullable(b, ok)})
		}
		printBalanceLine(0, c.label(n), b, ok)
		return nil
	}

	all := balance.ForMap(m.Nodes)
	if asJSON {
		return printJSON(all)
	}

	res, err := radial.NewEngine(radial.WithConfig(c.Config.Radial())).Compute(m.Nodes)
	if err != nil {
		return err
	}
	if m.Title != "" {
		fmt.Fprintln(stdout, StyleTitle.Render(m.Title))
	}
	for _, pn := range res.PositionedNodes {
		b, ok := all[pn.ID]
		if !ok {
			continue
		}
		printBalanceLine(pn.Depth, pn.Label, b, true)
	}
	if len(all) == 0 {
		printInfo("No claim has weighted tailwind or headwind children")
	}
	return nil
}

// label returns the display label for a node, using the configured
// placeholder for blank statements.
func (c *CLI) label(n argmap.Node) string {
	if strings.TrimSpace(n.Statement) == "" {
		return c.Config.Layout.EmptyLabel
	}
	return n.Statement
}

// printBalanceLine prints one indented label followed by its bar.
func printBalanceLine(depth int, label string, b balance.Balance, ok bool) {
	indent := strings.Repeat("  ", depth)
	lines := styles.Wrap(label, labelWidth-len(indent), 1)
	text := ""
	if len(lines) > 0 {
		text = lines[0]
	}
	name := lipgloss.NewStyle().Width(labelWidth).Render(indent + text)

	if !ok {
		fmt.Fprintln(stdout, name+" "+StyleDim.Render("no weighted children"))
		return
	}
	pct := fmt.Sprintf("%3.0f%%", b.Ratio*100)
	fmt.Fprintln(stdout, name+" "+balanceBar(b.Ratio, barWidth)+" "+StyleValue.Render(pct)+" "+balanceCounts(b))
}

// balanceBar draws ratio as a tailwind segment followed by a headwind segment.
func balanceBar(ratio float64, width int) string {
	tw, hw := barSegments(ratio, width)
	return styleTailwind.Render(strings.Repeat("█", tw)) + styleHeadwind.Render(strings.Repeat("█", hw))
}

// barSegments splits width cells by ratio, clamped to [0, 1].
func barSegments(ratio float64, width int) (tailwind, headwind int) {
	ratio = math.Max(0, math.Min(1, ratio))
	tailwind = int(math.Round(ratio * float64(width)))
	return tailwind, width - tailwind
}

func nullable(b balance.Balance, ok bool) *balance.Balance {
	if !ok {
		return nil
	}
	return &b
}

func printJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
