package internal

import (
	"math"
	"strings"
)

// MetadataPair is one key/value fact from the metadata block
type MetadataPair struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// SessionMetadata holds metadata pairs in file order. Keys may repeat.
type SessionMetadata []MetadataPair

// Get returns the first value stored under key (case-insensitive)
func (m SessionMetadata) Get(key string) (string, bool) {
	for _, p := range m {
		if strings.EqualFold(p.Key, key) {
			return p.Value, true
		}
	}
	return "", false
}

// Lookup returns the value of the first key present, or "" if none are
func (m SessionMetadata) Lookup(keys ...string) string {
	for _, k := range keys {
		if v, ok := m.Get(k); ok {
			return v
		}
	}
	return ""
}

// Channel is a named header cell and its unit
type Channel struct {
	Name   string `json:"name" yaml:"name"`
	Unit   string `json:"unit" yaml:"unit"`
	Column int    `json:"column" yaml:"column"` // header cell index, blanks included
}

// ChannelSchema is the header row and unit row after blank cells are dropped
type ChannelSchema struct {
	Channels []Channel
	Units    map[string]string
	Width    int // header cell count including blank cells
}

// Names returns the channel names in header order
func (s ChannelSchema) Names() []string {
	names := make([]string, len(s.Channels))
	for i, ch := range s.Channels {
		names[i] = ch.Name
	}
	return names
}

// Unit returns the unit mapped to name
func (s ChannelSchema) Unit(name string) (string, bool) {
	u, ok := s.Units[name]
	return u, ok
}

// Column holds one channel's cells. Values is only populated when Numeric is set.
type Column struct {
	Name    string
	Unit    string
	Raw     []string
	Values  []float64 // NaN marks a blank cell
	Numeric bool

	// First cell that failed numeric coercion
	BadRow  int
	BadCell string
}

// Present returns the number of non-missing values
func (c *Column) Present() int {
	n := 0
	for _, v := range c.Values {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// TelemetryTable is the column-major data body
type TelemetryTable struct {
	Columns []Column
	Rows    int
	index   map[string]int
}

// Column returns the first column named name
func (t *TelemetryTable) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return &t.Columns[i], true
}

// Layout records where each region of the file starts
type Layout struct {
	MetadataLines int  `json:"metadata_lines" yaml:"metadata_lines"`
	HeaderLine    int  `json:"header_line" yaml:"header_line"`
	UnitLine      int  `json:"unit_line" yaml:"unit_line"`
	BodyLine      int  `json:"body_line" yaml:"body_line"`
	Detected      bool `json:"detected" yaml:"detected"`
}

// FixedLayout returns the layout for a file with n metadata lines
func FixedLayout(n int) Layout {
	return Layout{
		MetadataLines: n,
		HeaderLine:    n,
		UnitLine:      n + 1,
		BodyLine:      n + 2,
	}
}

// Summary holds descriptive statistics for one channel.
// StdDev uses the sample (N-1) denominator.
type Summary struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	StdDev float64 `json:"stddev" yaml:"stddev"`
	Count  int     `json:"count" yaml:"count"`
}
