package internal

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	utf8BOM       = "\ufeff"
	maxLineLength = 4 * 1024 * 1024
)

// ReadLines reads a whole export into memory, one entry per line
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return ReadLinesFrom(f)
}

// ReadLinesFrom reads every line of r. Trailing carriage returns and a leading BOM are dropped.
func ReadLinesFrom(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineLength)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(lines) == 0 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}

	return lines, nil
}

// splitRow splits a line into cleaned cells. Quote characters are removed
// and surrounding whitespace trimmed. An empty line yields no cells.
func splitRow(line string) []string {
	if line == "" {
		return nil
	}

	r := csv.NewReader(strings.NewReader(line))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	record, err := r.Read()
	if err != nil {
		// Unbalanced quoting; fall back to a plain split
		record = strings.Split(line, ",")
	}

	cells := make([]string, len(record))
	for i, c := range record {
		cells[i] = cleanCell(c)
	}
	return cells
}

func cleanCell(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
