package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/windrose/pkg/errors"
	"github.com/matzehuels/windrose/pkg/pipeline"
	"github.com/matzehuels/windrose/pkg/radial"
)

// checkCommand creates the check command for diagnosing a map's structure.
func (c *CLI) checkCommand() *cobra.Command {
	var (
		asJSON  bool
		outline bool
	)

	cmd := &cobra.Command{
		Use:   "check [map.json]",
		Short: "Report structural problems in an argument map",
		Long: `Report structural problems in an argument map.

A map lays out cleanly when it has exactly one thesis and every other claim
reaches it through its parents. check lists the roots, duplicate IDs, orphans
(whose parent is missing), parent cycles and the claims stranded below them,
then exits non-zero if any claim would be left out of the layout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), args[0], asJSON, outline)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&outline, "outline", false, "read the input as an indented outline")

	return cmd
}

func (c *CLI) runCheck(ctx context.Context, input string, asJSON, outline bool) error {
	runner, err := c.newRunner(ctx, true)
	if err != nil {
		return err
	}
	defer runner.Close()

	m, err := runner.Import(ctx, input, pipeline.Options{Outline: outline, Logger: c.Logger})
	if err != nil {
		return fmt.Errorf("load map %s: %w", input, err)
	}

	rep := radial.Diagnose(m.Nodes)
	if asJSON {
		if err := printJSON(rep); err != nil {
			return err
		}
	} else {
		printReport(rep)
	}

	if !rep.OK() {
		return errs.New(errs.ErrCodeInvalidMap, "%s: %d of %d nodes would be left out", input, rep.Excluded(), rep.Total)
	}
	return nil
}

// printReport prints a diagnostics report as key/value lines.
func printReport(rep radial.Report) {
	printKeyValue("Nodes", strconv.Itoa(rep.Total))
	printKeyValue("Reachable", strconv.Itoa(rep.Reachable))
	printKeyValue("Depth", strconv.Itoa(rep.MaxDepth))
	printKeyValue("Roots", listOrDash(rep.Roots))

	if len(rep.Duplicates) > 0 {
		printWarning("%d duplicate id(s): %s", len(rep.Duplicates), strings.Join(rep.Duplicates, ", "))
	}
	if len(rep.Orphans) > 0 {
		printWarning("%d orphan(s) with a missing parent: %s", len(rep.Orphans), strings.Join(rep.Orphans, ", "))
	}
	for _, cycle := range rep.Cycles {
		printWarning("cycle: %s", strings.Join(append(cycle, cycle[0]), " → "))
	}
	if len(rep.Detached) > 0 {
		printWarning("%d node(s) below an orphan or cycle: %s", len(rep.Detached), strings.Join(rep.Detached, ", "))
	}

	printNewline()
	switch {
	case rep.OK():
		printSuccess("Every node is reachable from the thesis")
	case len(rep.Roots) == 0:
		printError("No thesis: every node has a parent")
	case len(rep.Roots) > 1:
		printError("%d roots: a map needs exactly one thesis", len(rep.Roots))
	default:
		printError("%d node(s) would be left out of the layout", rep.Excluded())
	}
}

func listOrDash(ids []string) string {
	if len(ids) == 0 {
		return "-"
	}
	return strings.Join(ids, ", ")
}
