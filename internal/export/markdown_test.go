package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iksnae/motec-session/internal"
)

func TestMarkdownExporter(t *testing.T) {
	doc := internal.CreateTestDocument()

	var buf bytes.Buffer
	if err := (&MarkdownExporter{}).Export(doc, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# Porsche 718 GT4\n",
		"**Samples:** 3",
		"| Venue | Daytona Road |",
		"| Speed | kph | 120.750 | 120.500 | 121.000 | 0.354 | 2 |",
		"**Excluded (non-numeric):** Gear",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatStat(t *testing.T) {
	if got := formatStat(1.23456); got != "1.235" {
		t.Errorf("formatStat(1.23456) = %q", got)
	}
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Speed", "Speed"},
		{"a|b", `a\|b`},
		{"**bold**", `\*\*bold\*\*`},
		{"__init__", `\_\_init\_\_`},
		{"two\nlines", "two lines"},
	}
	for _, tt := range tests {
		if got := escapeMarkdown(tt.in); got != tt.want {
			t.Errorf("escapeMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
