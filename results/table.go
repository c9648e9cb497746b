// Package results holds time-indexed simulation result tables:
// one row per time step, one column per node or link identifier.
// Identifier lookup resolves to a column index once, through a map
// built at construction, so cell access never searches.
package results

import "fmt"

// Table is a dense time × identifier table of float64 cells.
// The time axis is in seconds and assumed strictly increasing with
// uniform spacing; producers validate that at load boundaries,
// the table itself does not.
type Table struct {
	times []float64
	ids   []string
	index map[string]int
	cols  [][]float64 // column-major, each len(times) long
}

// NewTable builds an all-zero table over the given time axis and
// column identifiers. Duplicate identifiers fail.
func NewTable(times []float64, ids []string) (*Table, error) {
	t := &Table{
		times: append([]float64(nil), times...),
		ids:   append([]string(nil), ids...),
		index: make(map[string]int, len(ids)),
		cols:  make([][]float64, len(ids)),
	}
	for i, id := range ids {
		if _, dup := t.index[id]; dup {
			return nil, fmt.Errorf("duplicate column identifier %q", id)
		}
		t.index[id] = i
		t.cols[i] = make([]float64, len(times))
	}
	return t, nil
}

// Len returns the number of time steps.
func (t *Table) Len() int { return len(t.times) }

// NumColumns returns the number of identifiers.
func (t *Table) NumColumns() int { return len(t.ids) }

// Times returns the time axis. The slice is shared, not copied.
func (t *Table) Times() []float64 { return t.times }

// IDs returns the column identifiers in construction order.
// The slice is shared, not copied.
func (t *Table) IDs() []string { return t.ids }

// HasColumn reports whether id names a column.
func (t *Table) HasColumn(id string) bool {
	_, ok := t.index[id]
	return ok
}

// Column returns the column for id. The slice is shared, not copied.
// An unknown identifier is a lookup failure, surfaced as an error.
func (t *Table) Column(id string) ([]float64, error) {
	i, ok := t.index[id]
	if !ok {
		return nil, fmt.Errorf("no column %q in table", id)
	}
	return t.cols[i], nil
}

// Value returns the cell at time-step row and column id.
func (t *Table) Value(row int, id string) (float64, error) {
	col, err := t.Column(id)
	if err != nil {
		return 0, err
	}
	return col[row], nil
}

// Set writes the cell at time-step row and column id.
func (t *Table) Set(row int, id string, v float64) error {
	col, err := t.Column(id)
	if err != nil {
		return err
	}
	col[row] = v
	return nil
}

// SetColumn replaces the whole column for id. The values are copied.
func (t *Table) SetColumn(id string, values []float64) error {
	col, err := t.Column(id)
	if err != nil {
		return err
	}
	if len(values) != len(col) {
		return fmt.Errorf("column %q expects %d values, got %d", id, len(col), len(values))
	}
	copy(col, values)
	return nil
}

// EmptyLike returns an all-zero table with the same shape and
// identifiers as t.
func (t *Table) EmptyLike() *Table {
	out, _ := NewTable(t.times, t.ids) // ids already deduplicated
	return out
}

// SumRows collapses the table to a Series: the sum across all
// columns at each time step.
func (t *Table) SumRows() *Series {
	values := make([]float64, len(t.times))
	for _, col := range t.cols {
		for row, v := range col {
			values[row] += v
		}
	}
	return &Series{
		times:  append([]float64(nil), t.times...),
		values: values,
	}
}
