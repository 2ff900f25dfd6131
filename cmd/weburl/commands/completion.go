package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrUnsupportedShell is returned when an unsupported shell is specified.
var ErrUnsupportedShell = errors.New("unsupported shell")

var shells = []string{"bash", "zsh", "fish", "powershell"}

// NewCompletionCommand creates the completion command. It generates the
// script for the command tree it is attached to.
func NewCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [shell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for weburl.

Examples:
  weburl completion bash                # Generate bash completion
  weburl completion zsh                 # Generate zsh completion
  weburl completion fish                # Generate fish completion
  weburl completion powershell          # Generate PowerShell completion`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: shells,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			w := cmd.OutOrStdout()

			var err error

			switch args[0] {
			case "bash":
				err = root.GenBashCompletionV2(w, true)
			case "zsh":
				err = root.GenZshCompletion(w)
			case "fish":
				err = root.GenFishCompletion(w, true)
			case "powershell":
				err = root.GenPowerShellCompletionWithDesc(w)
			default:
				return unknownChoice(ErrUnsupportedShell, args[0], shells)
			}

			if err != nil {
				return fmt.Errorf("failed to generate %s completion: %w", args[0], err)
			}

			return nil
		},
	}
}
