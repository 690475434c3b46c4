package internal

import (
	"fmt"
	"io"
)

// AutoDetect asks the loader to locate the header row itself
const AutoDetect = -1

// Options controls how an export is parsed
type Options struct {
	// MetadataLines is the length of the metadata block, or AutoDetect.
	// Observed export revisions use 10, 11 or 12.
	MetadataLines int    `yaml:"metadata_lines"`
	TimeChannel   string `yaml:"time_channel"`
}

// DefaultOptions returns options that autodetect the layout
func DefaultOptions() Options {
	return Options{
		MetadataLines: AutoDetect,
		TimeChannel:   DefaultTimeChannel,
	}
}

// Load reads and parses the export at path
func Load(path string, opts Options) (*Document, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, &LoadError{Path: path, Stage: "open", Err: err}
	}
	return Parse(path, lines, opts)
}

// LoadReader parses an export read from r. name is used in errors only.
func LoadReader(name string, r io.Reader, opts Options) (*Document, error) {
	lines, err := ReadLinesFrom(r)
	if err != nil {
		return nil, &LoadError{Path: name, Stage: "open", Err: err}
	}
	return Parse(name, lines, opts)
}

// Parse runs the three stages over already-read lines
func Parse(source string, lines []string, opts Options) (*Document, error) {
	if opts.TimeChannel == "" {
		opts.TimeChannel = DefaultTimeChannel
	}

	layout, err := resolveLayout(lines, opts)
	if err != nil {
		return nil, &LoadError{Path: source, Stage: "layout", Err: err}
	}

	meta, err := ScanMetadata(lines, layout.MetadataLines)
	if err != nil {
		return nil, &LoadError{Path: source, Stage: "metadata", Err: err}
	}

	schema := ReadChannelSchema(lines[layout.HeaderLine], lines[layout.UnitLine])
	if len(schema.Channels) == 0 {
		return nil, &LoadError{Path: source, Stage: "schema", Err: fmt.Errorf("header row at line %d has no channel names", layout.HeaderLine+1)}
	}

	table, err := LoadTable(schema, lines[layout.BodyLine:], layout.BodyLine)
	if err != nil {
		return nil, &LoadError{Path: source, Stage: "body", Err: err}
	}

	doc := newDocument(source, layout, meta, schema, table, opts.TimeChannel)
	LogDebug("%s: %d metadata pairs, %d channels (%d analyzable), %d rows",
		source, len(meta), len(schema.Channels), len(doc.channels), table.Rows)

	return doc, nil
}

func resolveLayout(lines []string, opts Options) (Layout, error) {
	if opts.MetadataLines == AutoDetect {
		return DetectLayout(lines, opts.TimeChannel)
	}
	if opts.MetadataLines < 0 {
		return Layout{}, fmt.Errorf("invalid metadata line count %d", opts.MetadataLines)
	}

	layout := FixedLayout(opts.MetadataLines)
	if len(lines) < layout.BodyLine {
		return Layout{}, fmt.Errorf("%w: header and unit rows expected at lines %d-%d, file has %d lines",
			ErrTruncatedFile, layout.HeaderLine+1, layout.UnitLine+1, len(lines))
	}
	return layout, nil
}
