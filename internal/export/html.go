package export

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/iksnae/motec-session/internal"
)

// HTMLExporter renders every analyzable channel as a line chart against Time
// on a single standalone HTML page
type HTMLExporter struct{}

// Export exports a document to HTML format
func (e *HTMLExporter) Export(doc *internal.Document, w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = pageTitle(doc)

	for _, name := range doc.Channels() {
		if name == doc.TimeChannel() {
			continue
		}
		line, err := NewChannelChart(doc, name)
		if err != nil {
			return err
		}
		page.AddCharts(line)
	}

	return page.Render(w)
}

// Extension returns the file extension for this format
func (e *HTMLExporter) Extension() string {
	return "html"
}

// NewChannelChart builds a "<channel> Over Time (<unit>)" line chart
func NewChannelChart(doc *internal.Document, channel string) (*charts.Line, error) {
	times, err := doc.Time()
	if err != nil {
		return nil, fmt.Errorf("chart needs a time channel: %w", err)
	}
	values, err := doc.Series(channel)
	if err != nil {
		return nil, err
	}
	unit, _ := doc.Unit(channel)
	timeUnit, _ := doc.Unit(doc.TimeChannel())

	x := make([]string, len(times))
	for i, t := range times {
		x[i] = strconv.FormatFloat(t, 'f', -1, 64)
	}

	data := make([]opts.LineData, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			// echarts renders "-" as a gap
			data[i] = opts.LineData{Value: "-"}
			continue
		}
		data[i] = opts.LineData{Value: v}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: pageTitle(doc), Width: "100%", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s Over Time (%s)", channel, unit), Subtitle: filepath.Base(doc.Source())}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: axisName(doc.TimeChannel(), timeUnit), NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: axisName(channel, unit)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: 100}),
	)
	line.SetXAxis(x).
		AddSeries(channel, data, charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))

	return line, nil
}

func axisName(name, unit string) string {
	if unit == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, unit)
}

func pageTitle(doc *internal.Document) string {
	if v := doc.Metadata().Lookup("Vehicle"); v != "" {
		return v + " - MoTeC Telemetry"
	}
	return filepath.Base(doc.Source()) + " - MoTeC Telemetry"
}
