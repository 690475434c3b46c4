package export

import (
	"bytes"
	"testing"

	"github.com/iksnae/motec-session/internal"
)

func TestCSVExporter(t *testing.T) {
	doc := internal.CreateTestDocument()

	var buf bytes.Buffer
	if err := (&CSVExporter{}).Export(doc, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	want := "Time,Speed,RPM\n" +
		"s,kph,rpm\n" +
		"0,120.5,6500\n" +
		"0.1,121,6600\n" +
		"0.2,,6700\n"
	if buf.String() != want {
		t.Errorf("Export() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestCSVExporter_Reloads(t *testing.T) {
	doc := internal.CreateTestDocument()

	var buf bytes.Buffer
	if err := (&CSVExporter{}).Export(doc, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	again, err := internal.LoadReader("roundtrip.csv", &buf, internal.Options{MetadataLines: 0})
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}
	if len(again.Channels()) != 3 || again.Samples() != 3 {
		t.Errorf("reloaded %d channels, %d samples", len(again.Channels()), again.Samples())
	}
}
