package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iksnae/motec-session/internal"
)

func TestJSONLExporter(t *testing.T) {
	doc := internal.CreateTestDocument()

	var buf bytes.Buffer
	if err := (&JSONLExporter{}).Export(doc, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		`{"Time":0,"Speed":120.5,"RPM":6500}`,
		`{"Time":0.1,"Speed":121,"RPM":6600}`,
		`{"Time":0.2,"Speed":null,"RPM":6700}`,
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %s, want %s", i, lines[i], want[i])
		}
	}
}

func TestSampleRow_MarshalJSON(t *testing.T) {
	v := 1.5
	row := sampleRow{names: []string{"Zeta", "Alpha \"quoted\""}, values: []*float64{&v, nil}}

	got, err := row.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	want := `{"Zeta":1.5,"Alpha \"quoted\"":null}`
	if string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}
