package export

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/iksnae/motec-session/internal"
)

// MarkdownExporter exports a session overview and channel statistics in Markdown format
type MarkdownExporter struct{}

// Export exports a document to Markdown format
func (e *MarkdownExporter) Export(doc *internal.Document, w io.Writer) error {
	meta := doc.Metadata()

	title := filepath.Base(doc.Source())
	if vehicle := meta.Lookup("Vehicle"); vehicle != "" {
		title = vehicle
	}
	_, _ = fmt.Fprintf(w, "# %s\n\n", escapeMarkdown(title))

	_, _ = fmt.Fprintf(w, "**Source:** %s  \n", doc.Source())
	_, _ = fmt.Fprintf(w, "**Samples:** %d  \n", doc.Samples())
	_, _ = fmt.Fprintf(w, "**Duration:** %.3f s\n\n", doc.Duration())

	if len(meta) > 0 {
		_, _ = fmt.Fprintf(w, "## Session\n\n")
		_, _ = fmt.Fprintf(w, "| Key | Value |\n|---|---|\n")
		for _, p := range meta {
			_, _ = fmt.Fprintf(w, "| %s | %s |\n", escapeMarkdown(p.Key), escapeMarkdown(p.Value))
		}
		_, _ = fmt.Fprintf(w, "\n")
	}

	_, _ = fmt.Fprintf(w, "## Channels\n\n")
	_, _ = fmt.Fprintf(w, "| Channel | Unit | Mean | Min | Max | Std Dev | Samples |\n")
	_, _ = fmt.Fprintf(w, "|---|---|---:|---:|---:|---:|---:|\n")
	for _, name := range doc.Channels() {
		unit, _ := doc.Unit(name)
		sum, err := doc.Summary(name)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s | %d |\n",
			escapeMarkdown(name), escapeMarkdown(unit),
			formatStat(sum.Mean), formatStat(sum.Min), formatStat(sum.Max), formatStat(sum.StdDev),
			sum.Count)
	}

	if excluded := doc.Excluded(); len(excluded) > 0 {
		_, _ = fmt.Fprintf(w, "\n**Excluded (non-numeric):** %s\n", escapeMarkdown(strings.Join(excluded, ", ")))
	}

	return nil
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.3f", v)
}

// escapeMarkdown escapes characters that break table cells or emphasis
func escapeMarkdown(text string) string {
	r := strings.NewReplacer("|", "\\|", "**", "\\*\\*", "__", "\\_\\_", "\n", " ")
	return r.Replace(text)
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
