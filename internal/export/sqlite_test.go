package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/iksnae/motec-session/internal"
	"github.com/iksnae/motec-session/testutil"
)

func TestSQLiteExporter(t *testing.T) {
	doc := internal.CreateTestDocument()

	var buf bytes.Buffer
	if err := (&SQLiteExporter{}).Export(doc, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("SQLite format 3\x00")) {
		t.Fatal("output is not a SQLite database")
	}

	dir := testutil.CreateTempDir(t)
	path := testutil.WriteFile(t, dir, "session.db", buf.String())
	db := testutil.OpenSQLiteFile(t, filepath.Clean(path))

	if n := testutil.QueryInt(t, db, "SELECT COUNT(*) FROM channels"); n != 3 {
		t.Errorf("channels = %d, want 3", n)
	}
	if n := testutil.QueryInt(t, db, "SELECT COUNT(*) FROM samples WHERE channel = ?", "RPM"); n != 3 {
		t.Errorf("RPM samples = %d, want 3", n)
	}
}
