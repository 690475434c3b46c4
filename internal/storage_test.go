package internal

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iksnae/motec-session/testutil"
)

func TestReadLinesFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"unix endings", "a,b\nc,d\n", []string{"a,b", "c,d"}},
		{"windows endings", "a,b\r\nc,d\r\n", []string{"a,b", "c,d"}},
		{"no trailing newline", "a,b\nc,d", []string{"a,b", "c,d"}},
		{"byte order mark", "\ufeff\"Format\",\"MoTeC\"\n1,2\n", []string{`"Format","MoTeC"`, "1,2"}},
		{"blank lines kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLinesFrom(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadLinesFrom() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadLinesFrom() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadLines(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	path := testutil.WriteFile(t, dir, "export.csv", "\"Venue\",\"Daytona Road\"\r\n\"Time\",\"Speed\"\r\n")

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	if len(lines) != 2 || lines[1] != `"Time","Speed"` {
		t.Errorf("ReadLines() = %q", lines)
	}

	if _, err := ReadLines(dir + "/missing.csv"); err == nil {
		t.Error("ReadLines() expected error for a missing file")
	}
}

func TestSplitRow(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"quoted cells", `"Time","Speed","","RPM"`, []string{"Time", "Speed", "", "RPM"}},
		{"bare numbers", `0.0,120.5,x,6500`, []string{"0.0", "120.5", "x", "6500"}},
		{"surrounding whitespace", ` "Venue" , Daytona Road `, []string{"Venue", "Daytona Road"}},
		{"comma inside quotes", `"Comment","wet, then dry"`, []string{"Comment", "wet, then dry"}},
		{"trailing empty cells", `"Device","iRacing",,`, []string{"Device", "iRacing", "", ""}},
		{"empty line", ``, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, splitRow(tt.line)); diff != "" {
				t.Errorf("splitRow(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestIsBlankRow(t *testing.T) {
	if !isBlankRow(nil) {
		t.Error("nil row should be blank")
	}
	if !isBlankRow([]string{"", "", ""}) {
		t.Error("row of empty cells should be blank")
	}
	if isBlankRow([]string{"", "1"}) {
		t.Error("row with a value should not be blank")
	}
}
