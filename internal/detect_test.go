package internal

import (
	"errors"
	"testing"

	"github.com/iksnae/motec-session/testutil"
)

func TestDetectLayout(t *testing.T) {
	for _, n := range []int{10, 11, 12} {
		fixture := testutil.RaceExport()
		for len(fixture.Metadata) < n {
			fixture.Metadata = append(fixture.Metadata, []string{"Extra", "value"})
		}
		fixture.Metadata = fixture.Metadata[:n]

		layout, err := DetectLayout(fixture.Lines(), DefaultTimeChannel)
		if err != nil {
			t.Fatalf("n=%d: DetectLayout() error = %v", n, err)
		}
		want := FixedLayout(n)
		want.Detected = true
		if layout != want {
			t.Errorf("n=%d: DetectLayout() = %+v, want %+v", n, layout, want)
		}
	}
}

func TestDetectLayout_Cases(t *testing.T) {
	tests := []struct {
		name       string
		lines      []string
		timeName   string
		wantHeader int
		wantErr    error
	}{
		{
			name: "metadata time value is not a header",
			lines: []string{
				`"Time","10:23:45"`,
				`"Format","MoTeC CSV File"`,
				`"Time","Speed"`,
				`"s","kph"`,
				`0.0,120.5`,
			},
			wantHeader: 2,
		},
		{
			name: "metadata row of names without time is skipped",
			lines: []string{
				`"Format","MoTeC CSV File",,,"Workbook","Untitled"`,
				`"Time","Speed"`,
				`"s","kph"`,
				`0.0,120.5`,
			},
			wantHeader: 1,
		},
		{
			name: "blank lines between units and data",
			lines: []string{
				`"Driver","Test Driver"`,
				`"Time","Speed"`,
				`"s","kph"`,
				``,
				``,
				`0.0,120.5`,
			},
			wantHeader: 1,
		},
		{
			name: "header followed by non-numeric time is skipped",
			lines: []string{
				`"Time","Speed"`,
				`"Lap","Sector"`,
				`"Best","Worst"`,
				`"Time","Speed"`,
				`"s","kph"`,
				`0.0,120.5`,
			},
			wantHeader: 3,
		},
		{
			name: "custom time channel, case-insensitive",
			lines: []string{
				`"Session","Race"`,
				`"Elapsed","Speed"`,
				`"s","kph"`,
				`0.0,120.5`,
			},
			timeName:   "elapsed",
			wantHeader: 1,
		},
		{
			name: "header and units without data",
			lines: []string{
				`"Driver","Test Driver"`,
				`"Time","Speed"`,
				`"s","kph"`,
			},
			wantHeader: 1,
		},
		{
			name: "channel names with digits and symbols",
			lines: []string{
				`"Log Date","06/19/2025",,,"Origin Time","0","s"`,
				`"Log Time","14:02:11"`,
				`"Time","Speed","2nd Gear Ratio","Oil Temp °C","Brake?","#1 Damper"`,
				`"s","kph","","C","",""`,
				`0.0,120.5,2.1,95,0,12`,
			},
			wantHeader: 2,
		},
		{
			name: "date and time values rule a row out",
			lines: []string{
				`"Time","2025-06-19 14:02"`,
				`"Time","2:02:11 PM"`,
				`"Time","Speed"`,
				`"s","kph"`,
				`0.0,120.5`,
			},
			wantHeader: 2,
		},
		{
			name: "no time channel",
			lines: []string{
				`"Distance","Speed"`,
				`"m","kph"`,
				`0.0,120.5`,
			},
			wantErr: ErrLayoutNotFound,
		},
		{
			name:    "empty file",
			lines:   nil,
			wantErr: ErrLayoutNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := DetectLayout(tt.lines, tt.timeName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("DetectLayout() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectLayout() error = %v", err)
			}
			if layout.HeaderLine != tt.wantHeader {
				t.Errorf("HeaderLine = %d, want %d", layout.HeaderLine, tt.wantHeader)
			}
			if layout.UnitLine != tt.wantHeader+1 || layout.BodyLine != tt.wantHeader+2 {
				t.Errorf("layout = %+v, want unit and body rows after header", layout)
			}
		})
	}
}

func TestLooksLikeValue(t *testing.T) {
	tests := []struct {
		cell string
		want bool
	}{
		{"120.5", true},
		{"-3e2", true},
		{"14:02:11", true},
		{"14:02:11.250", true},
		{"06/19/2025", true},
		{"2025-06-19", true},
		{"2025-06-19 14:02", true},
		{"Time", false},
		{"2nd Gear Ratio", false},
		{"Oil Temp °C", false},
		{"Brake?", false},
		{"RPM", false},
	}

	for _, tt := range tests {
		if got := looksLikeValue(tt.cell); got != tt.want {
			t.Errorf("looksLikeValue(%q) = %v, want %v", tt.cell, got, tt.want)
		}
	}
}
