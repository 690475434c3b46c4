package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/motec-session/internal"
	"github.com/spf13/cobra"
)

var (
	channelsAll bool
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	unitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	excludedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)
)

// channelsCmd represents the channels command
var channelsCmd = &cobra.Command{
	Use:   "channels <file>",
	Short: "List the channels of an export",
	Long: `List every analyzable channel with its unit.

A channel is analyzable when all of its samples are numeric. Use --all to also
list the channels that were excluded and the first value that excluded them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		displayChannels(cmd.OutOrStdout(), doc, channelsAll)
		return nil
	},
}

// channelLabel formats a channel as "Name (unit)"
func channelLabel(name, unit string) string {
	return fmt.Sprintf("%s (%s)", name, unit)
}

func displayChannels(out io.Writer, doc *internal.Document, all bool) {
	channels := doc.Channels()
	if len(channels) == 0 {
		fmt.Fprintln(out, headerStyle.Render("📋 No analyzable channels found"))
		return
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("📋 %d channel(s), %d sample(s)", len(channels), doc.Samples())))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(w, titleStyle.Render("#")+"\t"+titleStyle.Render("Channel")+"\t"+titleStyle.Render("Unit")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 48))

	for i, name := range channels {
		unit, _ := doc.Unit(name)
		if unit == "" {
			unit = "—"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t\n", countStyle.Render(fmt.Sprint(i+1)), name, unitStyle.Render(unit))
	}
	_ = w.Flush()

	excluded := doc.Excluded()
	if !all || len(excluded) == 0 {
		if len(excluded) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("%d non-numeric channel(s) hidden, use --all to list them", len(excluded))))
		}
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("⚠️  %d excluded channel(s)", len(excluded))))
	for _, name := range excluded {
		if row, cell, ok := doc.Rejection(name); ok {
			fmt.Fprintf(out, "  %s %s\n", name, excludedStyle.Render(fmt.Sprintf("row %d: %q", row+1, cell)))
		} else {
			fmt.Fprintf(out, "  %s %s\n", name, excludedStyle.Render("no samples"))
		}
	}
}

func init() {
	rootCmd.AddCommand(channelsCmd)
	channelsCmd.Flags().BoolVar(&channelsAll, "all", false, "Also list excluded non-numeric channels")
}
