package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/motec-session/internal"
	"github.com/spf13/cobra"
)

var (
	inspectFormat string
)

// inspectReport describes how an export was decoded
type inspectReport struct {
	Source        string           `json:"source"`
	Layout        internal.Layout  `json:"layout"`
	MetadataPairs int              `json:"metadata_pairs"`
	HeaderWidth   int              `json:"header_width"`
	BlankColumns  int              `json:"blank_columns"`
	Rows          int              `json:"rows"`
	Channels      []inspectChannel `json:"channels"`
}

type inspectChannel struct {
	Name       string `json:"name"`
	Unit       string `json:"unit"`
	Column     int    `json:"column"`
	Analyzable bool   `json:"analyzable"`
	Reason     string `json:"reason,omitempty"`
}

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Inspect how an export is laid out",
	Long: `Inspect the structure of an export.

This command provides detailed information about:
  • Where the metadata block, header row, unit row and data body were found
  • Header width, including blank placeholder columns
  • Every named channel, its unit and whether it is analyzable
  • The first value that excluded a non-numeric channel

Examples:
  motec-session inspect stint1.csv
  motec-session inspect stint1.csv --format json
  motec-session inspect stint1.csv --metadata-lines 12`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		report := buildInspectReport(doc)
		switch inspectFormat {
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		case "text", "":
			displayInspectReport(cmd.OutOrStdout(), report)
			return nil
		default:
			return fmt.Errorf("unsupported format: %s (supported: text, json)", inspectFormat)
		}
	},
}

func buildInspectReport(doc *internal.Document) *inspectReport {
	schema := doc.Schema()
	analyzable := make(map[string]bool)
	for _, name := range doc.Channels() {
		analyzable[name] = true
	}

	r := &inspectReport{
		Source:        doc.Source(),
		Layout:        doc.Layout(),
		MetadataPairs: len(doc.Metadata()),
		HeaderWidth:   schema.Width,
		BlankColumns:  schema.Width - len(schema.Channels),
		Rows:          doc.Samples(),
	}

	seen := make(map[string]bool)
	for _, ch := range schema.Channels {
		ic := inspectChannel{Name: ch.Name, Unit: ch.Unit, Column: ch.Column}
		switch {
		case seen[ch.Name]:
			ic.Reason = "duplicate name"
		case analyzable[ch.Name]:
			ic.Analyzable = true
		default:
			if row, cell, ok := doc.Rejection(ch.Name); ok {
				ic.Reason = fmt.Sprintf("non-numeric %q at row %d", cell, row+1)
			} else {
				ic.Reason = "no samples"
			}
		}
		seen[ch.Name] = true
		r.Channels = append(r.Channels, ic)
	}

	return r
}

func displayInspectReport(out io.Writer, r *inspectReport) {
	mode := "fixed"
	if r.Layout.Detected {
		mode = "detected"
	}

	fmt.Fprintf(out, "📊 %s\n\n", r.Source)
	fmt.Fprintln(out, titleStyle.Render("Layout"))
	fmt.Fprintf(out, "  Metadata lines: %d (%s), %d pair(s)\n", r.Layout.MetadataLines, mode, r.MetadataPairs)
	fmt.Fprintf(out, "  Header row:     line %d\n", r.Layout.HeaderLine+1)
	fmt.Fprintf(out, "  Unit row:       line %d\n", r.Layout.UnitLine+1)
	fmt.Fprintf(out, "  Data body:      line %d, %d row(s)\n", r.Layout.BodyLine+1, r.Rows)
	fmt.Fprintf(out, "  Header width:   %d (%d blank)\n\n", r.HeaderWidth, r.BlankColumns)

	fmt.Fprintln(out, titleStyle.Render("Channels"))
	for _, ch := range r.Channels {
		if ch.Analyzable {
			fmt.Fprintf(out, "  ✅ [%d] %s\n", ch.Column, channelLabel(ch.Name, ch.Unit))
		} else {
			fmt.Fprintf(out, "  ⚠️  [%d] %s %s\n", ch.Column, channelLabel(ch.Name, ch.Unit), excludedStyle.Render(ch.Reason))
		}
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "text", "Output format (text, json)")
}
