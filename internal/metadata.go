package internal

import (
	"fmt"
	"strings"
)

// ScanMetadata extracts key/value pairs from the first n lines.
//
// Each line carries up to two pairs, at cells {0,1} and {4,5}. A pair is kept
// only when both its key and value are non-empty. Lines that yield no pair
// are skipped without error.
func ScanMetadata(lines []string, n int) (SessionMetadata, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid metadata line count %d", n)
	}
	if len(lines) < n {
		return nil, fmt.Errorf("%w: want %d metadata lines, file has %d", ErrTruncatedFile, n, len(lines))
	}

	meta := make(SessionMetadata, 0, n)
	for i, line := range lines[:n] {
		pairs := metadataPairs(splitRow(line))
		if len(pairs) == 0 && strings.TrimSpace(line) != "" {
			LogDebug("metadata line %d: no key/value pair, skipping", i+1)
		}
		meta = append(meta, pairs...)
	}

	return meta, nil
}

func metadataPairs(cells []string) []MetadataPair {
	var pairs []MetadataPair
	if len(cells) >= 2 && cells[0] != "" && cells[1] != "" {
		pairs = append(pairs, MetadataPair{Key: cells[0], Value: cells[1]})
	}
	if len(cells) >= 6 && cells[4] != "" && cells[5] != "" {
		pairs = append(pairs, MetadataPair{Key: cells[4], Value: cells[5]})
	}
	return pairs
}
