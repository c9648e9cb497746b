package element

import "fmt"

// Demands is an ordered collection of TimeSeries representing
// superposed consumption signals. Order is preserved; later entries
// sum with earlier ones. Members may share Pattern references.
type Demands struct {
	entries []*TimeSeries
}

// NewDemands builds a collection from zero or more members.
func NewDemands(ts ...*TimeSeries) *Demands {
	d := &Demands{}
	d.entries = append(d.entries, ts...)
	return d
}

// Len returns the number of members.
func (d *Demands) Len() int { return len(d.entries) }

// Entry returns the member at index i.
func (d *Demands) Entry(i int) *TimeSeries { return d.entries[i] }

// List returns the members in iteration order.
// The slice is fresh but the members are shared.
func (d *Demands) List() []*TimeSeries {
	out := make([]*TimeSeries, len(d.entries))
	copy(out, d.entries)
	return out
}

// Append adds a member at the end.
func (d *Demands) Append(ts *TimeSeries) {
	d.entries = append(d.entries, ts)
}

// AppendEntry is the (base, pattern, category) shorthand:
// it constructs the TimeSeries before storing it.
func (d *Demands) AppendEntry(base float64, pattern *Pattern, category string) error {
	ts, err := NewTimeSeries(base, pattern, category)
	if err != nil {
		return fmt.Errorf("append demand entry: %w", err)
	}
	d.entries = append(d.entries, ts)
	return nil
}

// Insert adds a member at index i, shifting later members right.
func (d *Demands) Insert(i int, ts *TimeSeries) {
	d.entries = append(d.entries, nil)
	copy(d.entries[i+1:], d.entries[i:])
	d.entries[i] = ts
}

// Remove deletes the member at index i.
func (d *Demands) Remove(i int) {
	d.entries = append(d.entries[:i], d.entries[i+1:]...)
}

// Set replaces the member at index i.
func (d *Demands) Set(i int, ts *TimeSeries) { d.entries[i] = ts }

// Extend appends every member of another collection.
func (d *Demands) Extend(o *Demands) {
	d.entries = append(d.entries, o.entries...)
}

// Clear removes all members.
func (d *Demands) Clear() { d.entries = nil }

// At returns the sum of member values at time t. An optional category
// restricts the sum to members whose category matches.
func (d *Demands) At(t float64, category ...string) float64 {
	sum := 0.0
	for _, ts := range d.entries {
		if len(category) > 0 && ts.Category() != category[0] {
			continue
		}
		sum += ts.At(t)
	}
	return sum
}

// GetValues returns the aggregate value on the grid start, start+step,
// ... end. Every member is evaluated on the one shared grid, so member
// series can never disagree on length.
func (d *Demands) GetValues(start, end, step float64) []float64 {
	grid := timeGrid(start, end, step)
	values := make([]float64, len(grid))
	for i, t := range grid {
		for _, ts := range d.entries {
			values[i] += ts.At(t)
		}
	}
	return values
}

// BaseDemandList returns member base values in iteration order,
// optionally filtered by category.
func (d *Demands) BaseDemandList(category ...string) []float64 {
	out := make([]float64, 0, len(d.entries))
	for _, ts := range d.entries {
		if len(category) > 0 && ts.Category() != category[0] {
			continue
		}
		out = append(out, ts.BaseValue())
	}
	return out
}

// PatternList returns member pattern references in iteration order,
// optionally filtered by category. Duplicates are expected: several
// demands often share one pattern.
func (d *Demands) PatternList(category ...string) []*Pattern {
	out := make([]*Pattern, 0, len(d.entries))
	for _, ts := range d.entries {
		if len(category) > 0 && ts.Category() != category[0] {
			continue
		}
		out = append(out, ts.Pattern())
	}
	return out
}

// CategoryList returns member category labels in iteration order,
// optionally filtered by category.
func (d *Demands) CategoryList(category ...string) []string {
	out := make([]string, 0, len(d.entries))
	for _, ts := range d.entries {
		if len(category) > 0 && ts.Category() != category[0] {
			continue
		}
		out = append(out, ts.Category())
	}
	return out
}
