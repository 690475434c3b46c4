package internal

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize computes descriptive statistics over the non-missing values
func Summarize(values []float64) Summary {
	xs := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			xs = append(xs, v)
		}
	}

	s := Summary{Count: len(xs)}
	if len(xs) == 0 {
		nan := math.NaN()
		s.Mean, s.Min, s.Max, s.StdDev = nan, nan, nan, nan
		return s
	}

	s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)
	if len(xs) < 2 {
		s.StdDev = math.NaN()
	}
	s.Min = floats.Min(xs)
	s.Max = floats.Max(xs)

	return s
}
