package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iksnae/motec-session/internal"
	"github.com/iksnae/motec-session/internal/export"
	"github.com/spf13/cobra"
)

var (
	format    string
	outputDir string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <file>...",
	Short: "Export telemetry to file",
	Long: `Export one or more telemetry files to another format
(json, jsonl, yaml, md, csv, html, sqlite).

Each input is written to <out>/<name>.<ext>. A file that fails to load
aborts the export before anything is written for it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("format") {
			format = cfg.Export.Format
		}
		if !cmd.Flags().Changed("out") {
			outputDir = cfg.Export.Dir
		}

		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		// Load everything first so a bad file never leaves partial output
		docs := make([]*internal.Document, 0, len(args))
		for _, path := range args {
			doc, err := loadDocument(path)
			if err != nil {
				return err
			}
			docs = append(docs, doc)
		}

		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		ctx := context.Background()
		err = internal.ShowProgress(ctx, fmt.Sprintf("Exporting %d file(s) to %s", len(docs), outputDir), func() error {
			for _, doc := range docs {
				if err := exportDocument(exporter, format, doc); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		internal.PrintSuccess(fmt.Sprintf("Export complete: %d file(s) exported to %s", len(docs), outputDir))
		return nil
	},
}

func exportDocument(exporter export.Exporter, format string, doc *internal.Document) error {
	base := strings.TrimSuffix(filepath.Base(doc.Source()), filepath.Ext(doc.Source()))
	path := filepath.Join(outputDir, fmt.Sprintf("%s.%s", base, exporter.Extension()))

	file, err := os.Create(path)
	if err != nil {
		return &internal.ExportError{Format: format, Path: path, Err: err}
	}

	if err := exporter.Export(doc, file); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return &internal.ExportError{Format: format, Path: path, Err: err}
	}

	if err := file.Close(); err != nil {
		internal.LogWarn("Failed to close file %s: %v", path, err)
	}
	internal.LogDebug("Wrote %s", path)
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&format, "format", "f", "json", "Export format ("+strings.Join(export.Formats, ", ")+")")
	exportCmd.Flags().StringVarP(&outputDir, "out", "o", "./exports", "Output directory")
}
