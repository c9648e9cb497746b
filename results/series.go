package results

import "fmt"

// Series is a scalar metric sampled on the same time axis as the
// tables it was derived from.
type Series struct {
	times  []float64
	values []float64
}

// NewSeries pairs a time axis with values of equal length.
func NewSeries(times, values []float64) (*Series, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("series needs matching lengths, got %d times and %d values",
			len(times), len(values))
	}
	return &Series{
		times:  append([]float64(nil), times...),
		values: append([]float64(nil), values...),
	}, nil
}

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.values) }

// Times returns the time axis. The slice is shared, not copied.
func (s *Series) Times() []float64 { return s.times }

// Values returns the sample values. The slice is shared, not copied.
func (s *Series) Values() []float64 { return s.values }

// At returns the sample at index i.
func (s *Series) At(i int) float64 { return s.values[i] }

// Time returns the time at index i.
func (s *Series) Time(i int) float64 { return s.times[i] }

// Sum returns the total of all samples.
func (s *Series) Sum() float64 {
	sum := 0.0
	for _, v := range s.values {
		sum += v
	}
	return sum
}

// CumSum returns a new Series holding the running total.
func (s *Series) CumSum() *Series {
	values := make([]float64, len(s.values))
	sum := 0.0
	for i, v := range s.values {
		sum += v
		values[i] = sum
	}
	return &Series{
		times:  append([]float64(nil), s.times...),
		values: values,
	}
}

// RunningMax returns a new Series holding the cumulative maximum.
func (s *Series) RunningMax() *Series {
	values := make([]float64, len(s.values))
	for i, v := range s.values {
		if i > 0 && values[i-1] > v {
			v = values[i-1]
		}
		values[i] = v
	}
	return &Series{
		times:  append([]float64(nil), s.times...),
		values: values,
	}
}

// IsNonDecreasing reports whether no sample drops below its
// predecessor.
func (s *Series) IsNonDecreasing() bool {
	for i := 1; i < len(s.values); i++ {
		if s.values[i] < s.values[i-1] {
			return false
		}
	}
	return true
}

// ValueAtTime returns the sample whose time equals t.
// Used by tests and the HTTP series API to address samples by
// simulation time rather than index.
func (s *Series) ValueAtTime(t float64) (float64, error) {
	for i, st := range s.times {
		if st == t {
			return s.values[i], nil
		}
	}
	return 0, fmt.Errorf("no sample at time %v", t)
}
