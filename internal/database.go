package internal

import (
	"database/sql"
	"fmt"
	"math"

	_ "modernc.org/sqlite"
)

const databaseSchema = `
CREATE TABLE IF NOT EXISTS metadata (
	seq   INTEGER PRIMARY KEY,
	key   TEXT NOT NULL,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS channels (
	name         TEXT PRIMARY KEY,
	unit         TEXT NOT NULL,
	position     INTEGER NOT NULL,
	mean         REAL,
	min          REAL,
	max          REAL,
	stddev       REAL,
	sample_count INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS samples (
	row     INTEGER NOT NULL,
	channel TEXT NOT NULL REFERENCES channels(name),
	value   REAL,
	PRIMARY KEY (row, channel)
);
`

// OpenDatabase opens a SQLite database in read-only mode
func OpenDatabase(path string) (*sql.DB, error) {
	return openDatabase("file:" + path + "?mode=ro")
}

// CreateDatabase opens a SQLite database for writing and creates the export tables
func CreateDatabase(path string) (*sql.DB, error) {
	db, err := openDatabase(path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(databaseSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return db, nil
}

func openDatabase(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

// WriteDocument stores metadata, channel summaries and samples in one transaction
func WriteDocument(db *sql.DB, doc *Document) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin failed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, p := range doc.Metadata() {
		if _, err := tx.Exec("INSERT INTO metadata (seq, key, value) VALUES (?, ?, ?)", i, p.Key, p.Value); err != nil {
			return fmt.Errorf("insert metadata failed: %w", err)
		}
	}

	sampleStmt, err := tx.Prepare("INSERT INTO samples (row, channel, value) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare failed: %w", err)
	}
	defer sampleStmt.Close()

	for pos, name := range doc.Channels() {
		unit, _ := doc.Unit(name)
		sum, _ := doc.Summary(name)
		if _, err := tx.Exec(
			"INSERT INTO channels (name, unit, position, mean, min, max, stddev, sample_count) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			name, unit, pos, nullFloat(sum.Mean), nullFloat(sum.Min), nullFloat(sum.Max), nullFloat(sum.StdDev), sum.Count,
		); err != nil {
			return fmt.Errorf("insert channel %s failed: %w", name, err)
		}

		series, _ := doc.Series(name)
		for row, v := range series {
			if _, err := sampleStmt.Exec(row, name, nullFloat(v)); err != nil {
				return fmt.Errorf("insert sample %s[%d] failed: %w", name, row, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

func nullFloat(v float64) sql.NullFloat64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}
