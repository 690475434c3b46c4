package internal

import (
	"errors"
	"math"
	"testing"
)

func TestLoadTable(t *testing.T) {
	schema := ReadChannelSchema(`Time,Speed,,RPM,Lap Time`, `s,kph,,rpm,s`)
	body := []string{
		`0.0,120.5,x,6500,92.1`,
		``,
		`0.1,,y,6600,DNF`,
		`,,,,`,
	}

	table, err := LoadTable(schema, body, 13)
	if err != nil {
		t.Fatalf("LoadTable() error = %v", err)
	}
	if table.Rows != 2 {
		t.Errorf("Rows = %d, want 2 (blank rows skipped)", table.Rows)
	}
	if len(table.Columns) != 4 {
		t.Fatalf("len(Columns) = %d, want 4", len(table.Columns))
	}

	speed, ok := table.Column("Speed")
	if !ok {
		t.Fatal("Speed column missing")
	}
	if !speed.Numeric {
		t.Error("Speed should be numeric; blank cells are missing values")
	}
	if speed.Values[0] != 120.5 || !math.IsNaN(speed.Values[1]) {
		t.Errorf("Speed values = %v, want [120.5 NaN]", speed.Values)
	}
	if speed.Present() != 1 {
		t.Errorf("Speed Present() = %d, want 1", speed.Present())
	}

	lap, _ := table.Column("Lap Time")
	if lap.Numeric {
		t.Error("Lap Time should not be numeric")
	}
	if lap.BadRow != 1 || lap.BadCell != "DNF" {
		t.Errorf("Lap Time rejection = row %d %q, want row 1 \"DNF\"", lap.BadRow, lap.BadCell)
	}
	if lap.Raw[1] != "DNF" {
		t.Errorf("Lap Time raw = %v, want DNF retained", lap.Raw)
	}

	rpm, _ := table.Column("RPM")
	if rpm.Values[1] != 6600 {
		t.Errorf("RPM mapped to wrong body column: %v", rpm.Values)
	}
}

func TestLoadTable_Mismatch(t *testing.T) {
	schema := ReadChannelSchema(`Time,Speed,,RPM`, `s,kph,,rpm`)

	tests := []struct {
		name     string
		body     []string
		wantLine int
		wantGot  int
	}{
		{
			name:     "short row",
			body:     []string{`0.0,120.5,x,6500`, `0.1,121.0,6600`},
			wantLine: 21,
			wantGot:  3,
		},
		{
			name:     "long row",
			body:     []string{`0.0,120.5,x,6500,1`},
			wantLine: 20,
			wantGot:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTable(schema, tt.body, 20)
			if !errors.Is(err, ErrSchemaBodyMismatch) {
				t.Fatalf("LoadTable() error = %v, want ErrSchemaBodyMismatch", err)
			}
			var mismatch *MismatchError
			if !errors.As(err, &mismatch) {
				t.Fatalf("LoadTable() error should be a *MismatchError")
			}
			if mismatch.Line != tt.wantLine || mismatch.Got != tt.wantGot || mismatch.Want != 4 {
				t.Errorf("MismatchError = %+v, want line %d got %d want 4", mismatch, tt.wantLine, tt.wantGot)
			}
		})
	}
}

func TestLoadTable_EmptyColumnExcluded(t *testing.T) {
	schema := ReadChannelSchema(`Time,Spare`, `s,`)
	table, err := LoadTable(schema, []string{`0.0,`, `0.1,`}, 0)
	if err != nil {
		t.Fatalf("LoadTable() error = %v", err)
	}
	spare, _ := table.Column("Spare")
	if spare.Numeric {
		t.Error("a column with no samples should not be numeric")
	}
	if spare.BadRow != -1 {
		t.Errorf("BadRow = %d, want -1", spare.BadRow)
	}
}
