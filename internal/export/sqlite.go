package export

import (
	"fmt"
	"io"
	"os"

	"github.com/iksnae/motec-session/internal"
)

// SQLiteExporter writes the document into a SQLite database with metadata,
// channels and samples tables
type SQLiteExporter struct{}

// Export builds the database in a temporary file and streams it to w
func (e *SQLiteExporter) Export(doc *internal.Document, w io.Writer) error {
	tmp, err := os.CreateTemp("", "motec-session-*.db")
	if err != nil {
		return fmt.Errorf("failed to create temp database: %w", err)
	}
	path := tmp.Name()
	_ = tmp.Close()
	defer func() { _ = os.Remove(path) }()

	db, err := internal.CreateDatabase(path)
	if err != nil {
		return err
	}
	if err := internal.WriteDocument(db, doc); err != nil {
		_ = db.Close()
		return err
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to reopen database: %w", err)
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}

// Extension returns the file extension for this format
func (e *SQLiteExporter) Extension() string {
	return "db"
}
