package element

import (
	"fmt"
	"math"
)

// TimeSeries is a base scalar value, optionally modulated by a Pattern
// and tagged with a category label ("" means uncategorized).
// The pattern is shared by reference: mutating a pattern is observed
// by every TimeSeries holding it. Copy the pattern first if isolation
// is required.
type TimeSeries struct {
	base     float64
	pattern  *Pattern
	category string
}

// NewTimeSeries builds a time series from a finite base value.
// NaN or infinite bases fail construction.
func NewTimeSeries(base float64, pattern *Pattern, category string) (*TimeSeries, error) {
	if !isFinite(base) {
		return nil, fmt.Errorf("time series base value must be a finite number, got %v", base)
	}
	return &TimeSeries{
		base:     base,
		pattern:  pattern,
		category: category,
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// BaseValue returns the unscaled base value.
func (ts *TimeSeries) BaseValue() float64 { return ts.base }

// Pattern returns the attached pattern, nil when unpatterned.
func (ts *TimeSeries) Pattern() *Pattern { return ts.pattern }

// PatternName returns the attached pattern's name, "" when unpatterned.
func (ts *TimeSeries) PatternName() string {
	if ts.pattern == nil {
		return ""
	}
	return ts.pattern.Name
}

// Category returns the category label.
func (ts *TimeSeries) Category() string { return ts.category }

// SetBaseValue replaces the base value, with the same finiteness
// validation as construction.
func (ts *TimeSeries) SetBaseValue(base float64) error {
	if !isFinite(base) {
		return fmt.Errorf("time series base value must be a finite number, got %v", base)
	}
	ts.base = base
	return nil
}

// SetPattern replaces the attached pattern. A nil pattern
// makes the series constant at its base value.
func (ts *TimeSeries) SetPattern(p *Pattern) { ts.pattern = p }

// SetCategory replaces the category label.
func (ts *TimeSeries) SetCategory(category string) { ts.category = category }

// At returns the value at time t: base × pattern multiplier,
// or just base when no pattern is attached.
func (ts *TimeSeries) At(t float64) float64 {
	if ts.pattern == nil {
		return ts.base
	}
	return ts.base * ts.pattern.At(t)
}

// GetValues evaluates the series on the grid start, start+step, ...
// up to and including end when end lands on the grid.
func (ts *TimeSeries) GetValues(start, end, step float64) []float64 {
	grid := timeGrid(start, end, step)
	values := make([]float64, len(grid))
	for i, t := range grid {
		values[i] = ts.At(t)
	}
	return values
}

// Equal reports value equality: base, category, and pattern by value
// (not identity).
func (ts *TimeSeries) Equal(o *TimeSeries) bool {
	if ts == nil || o == nil {
		return ts == o
	}
	if ts.base != o.base || ts.category != o.category {
		return false
	}
	return ts.pattern.Equal(o.pattern)
}

func (ts *TimeSeries) String() string {
	return fmt.Sprintf("<TimeSeries: base=%v, pattern=%q, category=%q>",
		ts.base, ts.PatternName(), ts.category)
}

// timeGrid builds the shared sampling grid for GetValues.
// The small slack absorbs float accumulation so an end point
// that lies on the grid is always included.
func timeGrid(start, end, step float64) []float64 {
	if step <= 0 || end < start {
		return nil
	}
	n := int((end-start)/step+1e-9) + 1
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = start + float64(i)*step
	}
	return grid
}
