package internal

import (
	"math"
	"slices"
	"strings"
)

// Document is a fully loaded telemetry export. It is never modified after
// Parse returns, so it may be shared between goroutines without locking.
type Document struct {
	source      string
	layout      Layout
	metadata    SessionMetadata
	schema      ChannelSchema
	table       *TelemetryTable
	channels    []string
	analyzable  map[string]*Column
	timeChannel string
	wantTime    string
}

func newDocument(source string, layout Layout, meta SessionMetadata, schema ChannelSchema, table *TelemetryTable, timeChannel string) *Document {
	d := &Document{
		source:     source,
		layout:     layout,
		metadata:   meta,
		schema:     schema,
		table:      table,
		analyzable: make(map[string]*Column),
		wantTime:   timeChannel,
	}

	for i := range table.Columns {
		col := &table.Columns[i]
		if !col.Numeric {
			continue
		}
		// A repeated name refers to its first column only
		if first, _ := table.Column(col.Name); first != col {
			continue
		}
		d.analyzable[col.Name] = col
		d.channels = append(d.channels, col.Name)
	}

	for _, name := range d.channels {
		if strings.EqualFold(name, timeChannel) {
			d.timeChannel = name
			break
		}
	}
	if d.timeChannel == "" {
		LogWarn("%s: no numeric %q channel", source, timeChannel)
	}

	return d
}

// Source returns the path or name the document was loaded from
func (d *Document) Source() string { return d.source }

// Layout returns where the metadata, header, unit and body rows were found
func (d *Document) Layout() Layout { return d.layout }

// Metadata returns the session metadata in file order
func (d *Document) Metadata() SessionMetadata {
	return slices.Clone(d.metadata)
}

// Schema returns every named channel from the header, including excluded ones
func (d *Document) Schema() ChannelSchema {
	return ChannelSchema{
		Channels: slices.Clone(d.schema.Channels),
		Units:    cloneMap(d.schema.Units),
		Width:    d.schema.Width,
	}
}

// Channels returns the analyzable channels in header order
func (d *Document) Channels() []string {
	return slices.Clone(d.channels)
}

// Excluded returns named channels that failed numeric coercion. A repeated
// name is judged by its first column only.
func (d *Document) Excluded() []string {
	var out []string
	for i := range d.table.Columns {
		col := &d.table.Columns[i]
		if first, _ := d.table.Column(col.Name); first != col || col.Numeric {
			continue
		}
		out = append(out, col.Name)
	}
	return out
}

// Samples returns the number of data rows
func (d *Document) Samples() int { return d.table.Rows }

// TimeChannel returns the name of the x-axis channel, or "" if the export has none
func (d *Document) TimeChannel() string { return d.timeChannel }

// Unit returns the unit of an analyzable channel; "" when the unit cell was blank
func (d *Document) Unit(name string) (string, error) {
	col, err := d.column(name)
	if err != nil {
		return "", err
	}
	return col.Unit, nil
}

// Series returns a channel's samples in row order. Missing samples are NaN.
func (d *Document) Series(name string) ([]float64, error) {
	col, err := d.column(name)
	if err != nil {
		return nil, err
	}
	return slices.Clone(col.Values), nil
}

// Time returns the time channel's samples
func (d *Document) Time() ([]float64, error) {
	if d.timeChannel == "" {
		return nil, &ChannelError{Name: d.wantTime}
	}
	return d.Series(d.timeChannel)
}

// Summary computes statistics for a channel
func (d *Document) Summary(name string) (Summary, error) {
	col, err := d.column(name)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(col.Values), nil
}

// Raw returns the unparsed cells of any named channel, analyzable or not
func (d *Document) Raw(name string) ([]string, error) {
	col, ok := d.table.Column(name)
	if !ok {
		return nil, &ChannelError{Name: name}
	}
	return slices.Clone(col.Raw), nil
}

// Rejection returns the first cell that kept a channel out of the analyzable set
func (d *Document) Rejection(name string) (row int, cell string, ok bool) {
	col, found := d.table.Column(name)
	if !found || col.Numeric || col.BadRow < 0 {
		return -1, "", false
	}
	return col.BadRow, col.BadCell, true
}

// Duration returns the span of the time channel, or 0 if unavailable
func (d *Document) Duration() float64 {
	col, ok := d.analyzable[d.timeChannel]
	if !ok {
		return 0
	}
	first, last := math.NaN(), math.NaN()
	for _, v := range col.Values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(first) {
			first = v
		}
		last = v
	}
	if math.IsNaN(first) {
		return 0
	}
	return last - first
}

func (d *Document) column(name string) (*Column, error) {
	col, ok := d.analyzable[name]
	if !ok {
		return nil, &ChannelError{Name: name}
	}
	return col, nil
}

func cloneMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
