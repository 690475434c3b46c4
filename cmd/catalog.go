package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/iksnae/motec-session/internal"
	"github.com/spf13/cobra"
)

var (
	catalogClearCache bool
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog [dir]",
	Short: "List every export in a directory",
	Long: `List every *.csv export in a directory with its driver, venue, vehicle,
date, sample count and duration. Results are cached and only files that
changed since the last run are parsed again.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		paths, err := findExports(dir)
		if err != nil {
			return err
		}

		cacheManager := internal.NewCacheManager(cfg.Cache.Dir)
		if catalogClearCache {
			if err := cacheManager.ClearCache(); err != nil {
				internal.LogError("Failed to clear cache: %v", err)
			} else {
				internal.LogInfo("Cache cleared")
			}
		}

		var entries []internal.CatalogEntry
		err = internal.ShowProgress(context.Background(), fmt.Sprintf("Scanning %d export(s)", len(paths)), func() error {
			var scanErr error
			entries, scanErr = internal.BuildCatalog(cacheManager, paths, cfg.Options())
			return scanErr
		})
		if err != nil {
			return err
		}

		displayCatalog(cmd.OutOrStdout(), entries)

		failed := 0
		for _, e := range entries {
			if e.Error != "" {
				failed++
			}
		}
		if failed > 0 {
			internal.PrintWarning(fmt.Sprintf("%d export(s) could not be loaded, run 'motec-session validate' for details", failed))
		}
		return nil
	},
}

func findExports(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var paths []string
	for _, e := range dirEntries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		abs, err := filepath.Abs(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		paths = append(paths, abs)
	}
	sort.Strings(paths)
	return paths, nil
}

func displayCatalog(out io.Writer, entries []internal.CatalogEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, headerStyle.Render("📋 No exports found"))
		return
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("📋 Found %d export(s)", len(entries))))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(w, titleStyle.Render("File")+"\t"+titleStyle.Render("Driver")+"\t"+titleStyle.Render("Venue")+"\t"+
		titleStyle.Render("Vehicle")+"\t"+titleStyle.Render("Date")+"\t"+titleStyle.Render("Samples")+"\t"+titleStyle.Render("Duration")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 110))

	for _, e := range entries {
		name := filepath.Base(e.Path)
		if e.Error != "" {
			_, _ = fmt.Fprintf(w, "%s\t%s\t\t\t\t\t\t\n", name, excludedStyle.Render("could not load"))
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			name, orDash(e.Driver), orDash(e.Venue), orDash(e.Vehicle), orDash(e.Date),
			countStyle.Render(fmt.Sprint(e.Samples)), fmt.Sprintf("%.1f s", e.Duration))
	}
	_ = w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return mutedStyle.Render("—")
	}
	return s
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().BoolVar(&catalogClearCache, "clear-cache", false, "Clear the cache before running")
}
