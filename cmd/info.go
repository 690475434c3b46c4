package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/motec-session/internal"
	"github.com/spf13/cobra"
)

var (
	sessionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1).
				MarginBottom(1)

	sessionMetaStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				MarginBottom(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show session metadata for an export",
	Long:  `Display the session metadata block of an export together with sample and channel counts.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		displaySessionHeader(cmd.OutOrStdout(), doc)
		displayMetadata(cmd.OutOrStdout(), doc.Metadata())
		return nil
	},
}

func displaySessionHeader(out io.Writer, doc *internal.Document) {
	meta := doc.Metadata()
	title := meta.Lookup("Vehicle")
	if title == "" {
		title = filepath.Base(doc.Source())
	}
	fmt.Fprintln(out, sessionHeaderStyle.Render(fmt.Sprintf("🏁 %s", title)))

	var metaParts []string
	if venue := meta.Lookup("Venue", "Track"); venue != "" {
		metaParts = append(metaParts, fmt.Sprintf("Venue: %s", venue))
	}
	if driver := meta.Lookup("Driver"); driver != "" {
		metaParts = append(metaParts, fmt.Sprintf("Driver: %s", driver))
	}
	metaParts = append(metaParts,
		fmt.Sprintf("Samples: %d", doc.Samples()),
		fmt.Sprintf("Duration: %.3f s", doc.Duration()),
		fmt.Sprintf("Channels: %d", len(doc.Channels())),
	)
	fmt.Fprintln(out, sessionMetaStyle.Render(strings.Join(metaParts, " • ")))
}

func displayMetadata(out io.Writer, meta internal.SessionMetadata) {
	if len(meta) == 0 {
		fmt.Fprintln(out, mutedStyle.Render("(no metadata)"))
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, p := range meta {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", keyStyle.Render(p.Key), p.Value)
	}
	_ = w.Flush()
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
