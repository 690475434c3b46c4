package internal

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedFile is returned when the file ends before the header and unit rows
	ErrTruncatedFile = errors.New("truncated telemetry file")

	// ErrSchemaBodyMismatch is returned when a data row does not line up with the header row
	ErrSchemaBodyMismatch = errors.New("data row does not match channel header")

	// ErrUnknownChannel is returned by accessors for channels outside the analyzable set
	ErrUnknownChannel = errors.New("unknown channel")

	// ErrLayoutNotFound is returned when no header row could be detected
	ErrLayoutNotFound = errors.New("could not locate channel header row")
)

// LoadError represents a fatal error while loading a telemetry file
type LoadError struct {
	Path  string
	Stage string // "open", "layout", "metadata", "schema", "body"
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not load telemetry file: %s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// MismatchError reports a body row whose cell count differs from the header row
type MismatchError struct {
	Line int // zero-based line number in the source file
	Got  int
	Want int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("line %d: got %d cells, header has %d", e.Line+1, e.Got, e.Want)
}

func (e *MismatchError) Unwrap() error {
	return ErrSchemaBodyMismatch
}

// ChannelError represents a request for a channel that cannot be analyzed
type ChannelError struct {
	Name string
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("unknown channel: %q", e.Name)
}

func (e *ChannelError) Unwrap() error {
	return ErrUnknownChannel
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
