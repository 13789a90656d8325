package facet

import (
	"math"

	"github.com/hupe1980/fielddata"
)

// Statistical accumulates count, sum, sum of squares, min and max of the
// values it sees.
type Statistical struct {
	Count        int64
	Total        float64
	SumOfSquares float64
	Min          float64
	Max          float64
}

var (
	_ Collector[*Statistical]        = (*Statistical)(nil)
	_ fielddata.DoubleValueInDocProc = (*Statistical)(nil)
)

// NewStatistical returns an empty accumulator.
func NewStatistical() *Statistical {
	return &Statistical{
		Min: math.Inf(1),
		Max: math.Inf(-1),
	}
}

// OnValue implements fielddata.DoubleValueInDocProc.
func (s *Statistical) OnValue(_ int, value float64) {
	s.Count++
	s.Total += value
	s.SumOfSquares += value * value
	if value < s.Min {
		s.Min = value
	}
	if value > s.Max {
		s.Max = value
	}
}

// Collect implements Collector.
func (s *Statistical) Collect(fd fielddata.NumericFieldData, docID int) {
	fd.ForEachDoubleValueInDoc(docID, s)
}

// Merge implements Collector.
func (s *Statistical) Merge(other *Statistical) {
	s.Count += other.Count
	s.Total += other.Total
	s.SumOfSquares += other.SumOfSquares
	s.Min = math.Min(s.Min, other.Min)
	s.Max = math.Max(s.Max, other.Max)
}

// Mean returns Total/Count, or 0 when empty.
func (s *Statistical) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Total / float64(s.Count)
}

// Variance returns the population variance, or 0 when empty.
func (s *Statistical) Variance() float64 {
	if s.Count == 0 {
		return 0
	}
	mean := s.Mean()
	return s.SumOfSquares/float64(s.Count) - mean*mean
}

// StdDeviation returns the population standard deviation.
func (s *Statistical) StdDeviation() float64 {
	return math.Sqrt(math.Max(s.Variance(), 0))
}
