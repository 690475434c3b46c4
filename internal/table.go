package internal

import (
	"math"
	"strconv"
)

// LoadTable reads the data body using the schema's positional column mapping.
//
// firstLine is the source line number of body[0] and is only used for error
// reporting. Blank rows are skipped. Any other row whose cell count differs
// from the header width aborts the load with a *MismatchError.
func LoadTable(schema ChannelSchema, body []string, firstLine int) (*TelemetryTable, error) {
	table := &TelemetryTable{
		Columns: make([]Column, len(schema.Channels)),
		index:   make(map[string]int, len(schema.Channels)),
	}
	for i, ch := range schema.Channels {
		table.Columns[i] = Column{Name: ch.Name, Unit: ch.Unit, BadRow: -1}
		if _, ok := table.index[ch.Name]; !ok {
			table.index[ch.Name] = i
		}
	}

	for i, line := range body {
		cells := splitRow(line)
		if isBlankRow(cells) {
			continue
		}
		if len(cells) != schema.Width {
			return nil, &MismatchError{Line: firstLine + i, Got: len(cells), Want: schema.Width}
		}
		for c, ch := range schema.Channels {
			table.Columns[c].Raw = append(table.Columns[c].Raw, cells[ch.Column])
		}
		table.Rows++
	}

	for i := range table.Columns {
		coerceColumn(&table.Columns[i])
	}

	return table, nil
}

// coerceColumn parses every cell as a float. Blank cells become NaN. The column
// is numeric only if every non-blank cell parses and at least one does.
func coerceColumn(col *Column) {
	values := make([]float64, len(col.Raw))
	present := 0
	for r, cell := range col.Raw {
		if cell == "" {
			values[r] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			col.BadRow = r
			col.BadCell = cell
			LogDebug("channel %q: non-numeric value %q at row %d, excluding", col.Name, cell, r)
			return
		}
		values[r] = v
		present++
	}
	if present == 0 {
		LogDebug("channel %q: no samples, excluding", col.Name)
		return
	}
	col.Values = values
	col.Numeric = true
}
