package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/motec-session/internal"
)

// JSONLExporter exports documents in JSONL format (one sample row per line)
type JSONLExporter struct{}

// Export writes one object per data row keyed by channel name in header order.
// Missing samples are null.
func (e *JSONLExporter) Export(doc *internal.Document, w io.Writer) error {
	enc := json.NewEncoder(w)

	channels := doc.Channels()
	series := make([][]float64, len(channels))
	for i, name := range channels {
		s, err := doc.Series(name)
		if err != nil {
			return err
		}
		series[i] = s
	}

	for r := 0; r < doc.Samples(); r++ {
		obj := sampleRow{names: channels, values: make([]*float64, len(channels))}
		for i := range channels {
			obj.values[i] = number(series[i][r])
		}

		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("failed to encode row %d: %w", r, err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}

// sampleRow is a JSON object whose keys keep channel order
type sampleRow struct {
	names  []string
	values []*float64
}

func (r sampleRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
