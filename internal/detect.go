package internal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultTimeChannel is the x-axis channel every export carries
const DefaultTimeChannel = "Time"

// dateTimePattern matches metadata values such as 14:02:11, 06/19/2025 or 2025-06-19 14:02
var dateTimePattern = regexp.MustCompile(`^\d{1,4}([:/.\-]\d{1,4})+([ T]\d{1,2}(:\d{1,2}){1,2}(\.\d+)?)?(\s*[AaPp][Mm])?$`)

// DetectLayout finds the header row without relying on a fixed metadata length.
//
// The header is the first row where no non-blank cell looks like a data value
// (a number, a date or a time of day), one cell is the time channel, and the
// first non-blank row after the unit row has a numeric value in the time
// column. Row width is checked later by LoadTable.
func DetectLayout(lines []string, timeChannel string) (Layout, error) {
	if timeChannel == "" {
		timeChannel = DefaultTimeChannel
	}

	for i := 0; i+1 < len(lines); i++ {
		cells := splitRow(lines[i])
		timeCol := headerTimeColumn(cells, timeChannel)
		if timeCol < 0 {
			continue
		}

		j := nextNonBlank(lines, i+2)
		if j < 0 {
			// Header and units with an empty body
			LogDebug("header candidate at line %d has no data rows", i+1)
			return detectedLayout(i), nil
		}
		first := splitRow(lines[j])
		if timeCol >= len(first) {
			continue
		}
		if _, err := strconv.ParseFloat(first[timeCol], 64); err != nil {
			continue
		}

		LogDebug("detected header at line %d", i+1)
		return detectedLayout(i), nil
	}

	return Layout{}, fmt.Errorf("%w: no row contains a %q channel followed by data", ErrLayoutNotFound, timeChannel)
}

func detectedLayout(n int) Layout {
	l := FixedLayout(n)
	l.Detected = true
	return l
}

// headerTimeColumn returns the time channel's cell index, or -1 if cells do not form a header row
func headerTimeColumn(cells []string, timeChannel string) int {
	timeCol := -1
	named := 0
	for i, c := range cells {
		if c == "" {
			continue
		}
		if looksLikeValue(c) {
			return -1
		}
		named++
		if timeCol < 0 && strings.EqualFold(c, timeChannel) {
			timeCol = i
		}
	}
	if named < 2 {
		return -1
	}
	return timeCol
}

func nextNonBlank(lines []string, from int) int {
	for j := from; j < len(lines); j++ {
		if !isBlankRow(splitRow(lines[j])) {
			return j
		}
	}
	return -1
}

// looksLikeValue reports whether a cell is data rather than a channel name
func looksLikeValue(cell string) bool {
	if _, err := strconv.ParseFloat(cell, 64); err == nil {
		return true
	}
	return dateTimePattern.MatchString(cell)
}
