package export

import (
	"math"

	"github.com/iksnae/motec-session/internal"
)

// Report is the serializable form of a document shared by the JSON and YAML exporters.
// Missing values are encoded as null.
type Report struct {
	Source   string                  `json:"source" yaml:"source"`
	Layout   internal.Layout         `json:"layout" yaml:"layout"`
	Metadata []internal.MetadataPair `json:"metadata" yaml:"metadata"`
	Samples  int                     `json:"samples" yaml:"samples"`
	Duration float64                 `json:"duration" yaml:"duration"`
	Excluded []string                `json:"excluded,omitempty" yaml:"excluded,omitempty"`
	Channels []ChannelReport         `json:"channels" yaml:"channels"`
}

// ChannelReport describes one analyzable channel
type ChannelReport struct {
	Name    string        `json:"name" yaml:"name"`
	Unit    string        `json:"unit" yaml:"unit"`
	Summary SummaryReport `json:"summary" yaml:"summary"`
	Series  []*float64    `json:"series" yaml:"series,flow"`
}

// SummaryReport mirrors internal.Summary with nullable fields
type SummaryReport struct {
	Mean   *float64 `json:"mean" yaml:"mean"`
	Min    *float64 `json:"min" yaml:"min"`
	Max    *float64 `json:"max" yaml:"max"`
	StdDev *float64 `json:"stddev" yaml:"stddev"`
	Count  int      `json:"count" yaml:"count"`
}

// NewReport builds a Report from doc
func NewReport(doc *internal.Document) *Report {
	r := &Report{
		Source:   doc.Source(),
		Layout:   doc.Layout(),
		Metadata: doc.Metadata(),
		Samples:  doc.Samples(),
		Duration: doc.Duration(),
		Excluded: doc.Excluded(),
	}
	if r.Metadata == nil {
		r.Metadata = []internal.MetadataPair{}
	}

	for _, name := range doc.Channels() {
		unit, _ := doc.Unit(name)
		sum, _ := doc.Summary(name)
		series, _ := doc.Series(name)

		values := make([]*float64, len(series))
		for i, v := range series {
			values[i] = number(v)
		}

		r.Channels = append(r.Channels, ChannelReport{
			Name: name,
			Unit: unit,
			Summary: SummaryReport{
				Mean:   number(sum.Mean),
				Min:    number(sum.Min),
				Max:    number(sum.Max),
				StdDev: number(sum.StdDev),
				Count:  sum.Count,
			},
			Series: values,
		})
	}

	return r
}

func number(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
