package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/motec-session/internal"
	"github.com/spf13/cobra"
)

var (
	validateSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Bold(true)

	validateErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Bold(true)
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check that exports can be loaded",
	Long: `Check that each export loads cleanly by verifying:
  • The header row can be located
  • The file is long enough to hold the header and unit rows
  • Every data row lines up with the header row
  • At least one channel is analyzable

Exits non-zero if any file fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := 0
		for _, path := range args {
			doc, err := internal.Load(path, cfg.Options())
			if err == nil && len(doc.Channels()) == 0 {
				err = errors.New("no analyzable channels")
			}
			if err != nil {
				failed++
				fmt.Fprintf(out, "%s %s: %v\n", validateErrorStyle.Render("❌"), path, err)
				continue
			}
			fmt.Fprintf(out, "%s %s: %d channel(s), %d sample(s)\n",
				validateSuccessStyle.Render("✅"), path, len(doc.Channels()), doc.Samples())
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d file(s) could not be loaded", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
