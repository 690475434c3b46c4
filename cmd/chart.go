package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iksnae/motec-session/internal"
	"github.com/iksnae/motec-session/internal/export"
	"github.com/spf13/cobra"
)

var (
	chartOutput string
)

// chartCmd represents the chart command
var chartCmd = &cobra.Command{
	Use:   "chart <file> <channel>",
	Short: "Render a channel over time as an HTML line chart",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		channel := args[1]

		line, err := export.NewChannelChart(doc, channel)
		if err != nil {
			return err
		}

		out := chartOutput
		if out == "" {
			base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			out = fmt.Sprintf("%s_%s.html", base, sanitizeFileName(channel))
		}

		file, err := os.Create(out)
		if err != nil {
			return &internal.ExportError{Format: "html", Path: out, Err: err}
		}
		if err := line.Render(file); err != nil {
			_ = file.Close()
			return &internal.ExportError{Format: "html", Path: out, Err: err}
		}
		if err := file.Close(); err != nil {
			return &internal.ExportError{Format: "html", Path: out, Err: err}
		}

		internal.PrintSuccess(fmt.Sprintf("Chart written to %s", out))
		return nil
	},
}

// sanitizeFileName replaces characters that are awkward in file names
func sanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.Flags().StringVarP(&chartOutput, "out", "o", "", "Output HTML file (default <file>_<channel>.html)")
}
