package testutil

import (
	"strings"
	"testing"
)

// ExportFixture describes a MoTeC CSV export. Metadata, header and unit
// cells are written quoted; body cells are written as given.
type ExportFixture struct {
	Metadata [][]string
	Header   []string
	Units    []string
	Rows     [][]string
}

// NewExportFixture returns a fixture with n filler metadata lines
func NewExportFixture(n int) *ExportFixture {
	f := &ExportFixture{}
	for i := 0; i < n; i++ {
		f.Metadata = append(f.Metadata, nil)
	}
	return f
}

// Lines renders the fixture one line per entry
func (f *ExportFixture) Lines() []string {
	var lines []string
	for _, cells := range f.Metadata {
		lines = append(lines, quoteRow(cells))
	}
	lines = append(lines, quoteRow(f.Header), quoteRow(f.Units))
	for _, row := range f.Rows {
		lines = append(lines, strings.Join(row, ","))
	}
	return lines
}

// String renders the fixture as file content
func (f *ExportFixture) String() string {
	return strings.Join(f.Lines(), "\n") + "\n"
}

// Write stores the fixture as dir/name and returns the full path
func (f *ExportFixture) Write(t *testing.T, dir, name string) string {
	t.Helper()
	return WriteFile(t, dir, name, f.String())
}

func quoteRow(cells []string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		if c == "" {
			continue
		}
		quoted[i] = `"` + c + `"`
	}
	return strings.Join(quoted, ",")
}

// RaceExport is a small export with 11 metadata lines, a blank header
// column and one channel with a non-numeric cell
func RaceExport() *ExportFixture {
	return &ExportFixture{
		Metadata: [][]string{
			{"Format", "MoTeC CSV File", "", "", "Workbook", "Untitled"},
			{"Venue", "Daytona Road"},
			{"Vehicle", "Porsche 718 GT4"},
			{"Driver", "Test Driver"},
			{"Device", "iRacing"},
			{"Comment", ""},
			{"Log Date", "06/19/2025", "", "", "Origin Time", "0", "s"},
			{"Log Time", "14:02:11"},
			{"Sample Rate", "10", "Hz"},
			{"Duration", "0.1", "s"},
			{"Range", "entire outing"},
		},
		Header: []string{"Time", "Speed", "", "RPM", "Lap Time"},
		Units:  []string{"s", "kph", "", "rpm", "s"},
		Rows: [][]string{
			{"0.0", "120.5", "x", "6500", "92.1"},
			{"0.1", "121.0", "y", "6600", "DNF"},
		},
	}
}
