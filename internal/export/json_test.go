package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iksnae/motec-session/internal"
)

func TestJSONExporter(t *testing.T) {
	doc := internal.CreateTestDocument()

	var buf bytes.Buffer
	if err := (&JSONExporter{}).Export(doc, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var report Report
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if report.Source != "sample.csv" || report.Samples != 3 {
		t.Errorf("report = %+v", report)
	}
	if !report.Layout.Detected || report.Layout.HeaderLine != 11 {
		t.Errorf("Layout = %+v", report.Layout)
	}
	if len(report.Channels) != 3 {
		t.Fatalf("Channels = %d, want 3", len(report.Channels))
	}

	speed := report.Channels[1]
	if speed.Name != "Speed" || speed.Unit != "kph" {
		t.Errorf("channel = %s (%s), want Speed (kph)", speed.Name, speed.Unit)
	}
	if speed.Summary.Count != 2 || speed.Summary.Mean == nil || *speed.Summary.Mean != 120.75 {
		t.Errorf("Speed summary = %+v", speed.Summary)
	}
	if len(speed.Series) != 3 || speed.Series[2] != nil {
		t.Errorf("Speed series should end with null, got %v", speed.Series)
	}
	if len(report.Excluded) != 1 || report.Excluded[0] != "Gear" {
		t.Errorf("Excluded = %v, want [Gear]", report.Excluded)
	}

	if !strings.Contains(buf.String(), "\n  \"source\"") {
		t.Error("JSON output should be indented")
	}
}
