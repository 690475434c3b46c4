package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/motec-session/internal"
	"github.com/iksnae/motec-session/internal/config"
	"github.com/spf13/cobra"
)

var (
	verbose       bool
	configPath    string
	metadataLines string
	timeChannel   string
	version       string = "dev"
	commit        string = "unknown"
	date          string = "unknown"

	cfg = config.Default()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "motec-session",
	Short: "Inspect and export MoTeC CSV telemetry sessions",
	Long: `A CLI tool to read MoTeC / iRacing channel-log CSV exports.

The export is decoded into session metadata, a channel list with units,
and a numeric time series for every channel.

Features:
  • Session metadata (driver, venue, vehicle, date)
  • Channel listing with units
  • Summary statistics per channel
  • Line charts of any channel over time
  • Export to JSON, JSONL, YAML, Markdown, CSV, HTML and SQLite
  • Catalog of every export in a directory

Quick Start:
  motec-session info stint1.csv              # Session overview
  motec-session channels stint1.csv          # Channels and units
  motec-session stats stint1.csv Speed RPM   # Summary statistics
  motec-session chart stint1.csv Speed       # HTML line chart
  motec-session export stint1.csv -f md      # Export as Markdown`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		internal.SetVerbose(verbose)

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("metadata-lines") {
			loaded.Parser.MetadataLines = metadataLines
		}
		if cmd.Flags().Changed("time-channel") {
			loaded.Parser.TimeChannel = timeChannel
		}
		if _, err := config.ParseMetadataLines(loaded.Parser.MetadataLines); err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		internal.PrintError(fmt.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.motec-session.yaml)")
	rootCmd.PersistentFlags().StringVar(&metadataLines, "metadata-lines", config.Auto, `Metadata block length, or "auto" to detect the header row`)
	rootCmd.PersistentFlags().StringVar(&timeChannel, "time-channel", internal.DefaultTimeChannel, "Name of the x-axis channel")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// loadDocument parses an export with the active configuration
func loadDocument(path string) (*internal.Document, error) {
	var doc *internal.Document
	err := internal.ShowProgress(context.Background(), fmt.Sprintf("Loading %s", filepath.Base(path)), func() error {
		var loadErr error
		doc, loadErr = internal.Load(path, cfg.Options())
		return loadErr
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}
