package cmd

import (
	"fmt"
	"io"
	"math"

	"github.com/iksnae/motec-session/internal"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats <file> [channel...]",
	Short: "Show summary statistics for channels",
	Long: `Show mean, minimum, maximum, standard deviation and sample count for each
requested channel. Without channel arguments every analyzable channel is shown.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		channels := args[1:]
		if len(channels) == 0 {
			channels = doc.Channels()
		}

		for _, name := range channels {
			if err := displaySummary(cmd.OutOrStdout(), doc, name); err != nil {
				return err
			}
		}
		return nil
	},
}

func displaySummary(out io.Writer, doc *internal.Document, name string) error {
	sum, err := doc.Summary(name)
	if err != nil {
		return fmt.Errorf("%w (use 'motec-session channels' to list channels)", err)
	}
	unit, _ := doc.Unit(name)

	fmt.Fprintln(out, titleStyle.Render(channelLabel(name, unit)))
	fmt.Fprintf(out, "  Mean: %s\n", formatValue(sum.Mean, unit))
	fmt.Fprintf(out, "  Min: %s\n", formatValue(sum.Min, unit))
	fmt.Fprintf(out, "  Max: %s\n", formatValue(sum.Max, unit))
	fmt.Fprintf(out, "  Std Dev: %s\n", formatValue(sum.StdDev, unit))
	fmt.Fprintf(out, "  Samples: %s\n", countStyle.Render(fmt.Sprint(sum.Count)))
	fmt.Fprintln(out)
	return nil
}

func formatValue(v float64, unit string) string {
	if math.IsNaN(v) {
		return mutedStyle.Render("n/a")
	}
	if unit == "" {
		return fmt.Sprintf("%.3f", v)
	}
	return fmt.Sprintf("%.3f %s", v, unit)
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
