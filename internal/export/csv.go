package export

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/iksnae/motec-session/internal"
)

// CSVExporter writes the analyzable channels as a plain CSV with a name row
// and a unit row followed by the samples. Metadata and excluded columns are dropped.
type CSVExporter struct{}

// Export exports a document to CSV format
func (e *CSVExporter) Export(doc *internal.Document, w io.Writer) error {
	cw := csv.NewWriter(w)

	channels := doc.Channels()
	units := make([]string, len(channels))
	series := make([][]float64, len(channels))
	for i, name := range channels {
		units[i], _ = doc.Unit(name)
		s, err := doc.Series(name)
		if err != nil {
			return err
		}
		series[i] = s
	}

	if err := cw.Write(channels); err != nil {
		return err
	}
	if err := cw.Write(units); err != nil {
		return err
	}

	record := make([]string, len(channels))
	for row := 0; row < doc.Samples(); row++ {
		for i := range channels {
			v := series[i][row]
			if math.IsNaN(v) {
				record[i] = ""
			} else {
				record[i] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Extension returns the file extension for this format
func (e *CSVExporter) Extension() string {
	return "csv"
}
