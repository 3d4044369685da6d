package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/windrose/pkg/pipeline"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for windrose.

  $ source <(windrose completion bash)
  $ windrose completion zsh > "${fpath[1]}/_windrose"
  $ windrose completion fish > ~/.config/fish/completions/windrose.fish
  PS> windrose completion powershell | Out-String | Invoke-Expression

Besides subcommands, the scripts complete --type, --style and --format values.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// completeChoices completes a flag from a fixed set of values.
func completeChoices(valid map[string]bool) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	choices := make([]string, 0, len(valid))
	for v := range valid {
		choices = append(choices, v)
	}
	slices.Sort(choices)
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return choices, cobra.ShellCompDirectiveNoFileComp
	}
}

// completeFormats completes one item of a comma-separated --format list,
// keeping the items already typed and skipping formats already chosen.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := ""
	chosen := map[string]bool{}
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
		for _, f := range strings.Split(toComplete[:i], ",") {
			chosen[strings.TrimSpace(f)] = true
		}
	}

	var out []string
	for f := range pipeline.ValidFormats {
		if !chosen[f] {
			out = append(out, prefix+f)
		}
	}
	slices.Sort(out)
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
