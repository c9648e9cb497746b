package aquanet

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/marisol/aquanet/results"
	"github.com/marisol/aquanet/types"
)

// tableDoc is the on-disk shape of a simulator result table.
// Columns are an ordered array so table column order is stable
// across loads.
type tableDoc struct {
	Time    []float64   `json:"time"`
	Columns []columnDoc `json:"columns"`
}

type columnDoc struct {
	ID     string    `json:"id"`
	Values []float64 `json:"values"`
}

// linkDoc is the on-disk shape of one link's topology.
type linkDoc struct {
	Name   string  `json:"name"`
	Start  string  `json:"start"`
	End    string  `json:"end"`
	Length float64 `json:"length"`
}

// LoadTableFile reads a time-indexed result table from a JSON file.
// The time axis must be strictly increasing and every column must
// match its length; either failure rejects the whole file.
func LoadTableFile(filename string) (*results.Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		slog.Error("could not open table file", slog.String("file", filename))
		return nil, err
	}
	defer file.Close()

	var doc tableDoc
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&doc); err != nil {
		slog.Error("could not decode table file", slog.String("file", filename))
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}

	for i := 1; i < len(doc.Time); i++ {
		if doc.Time[i] <= doc.Time[i-1] {
			return nil, fmt.Errorf("%s: time axis not strictly increasing at index %d", filename, i)
		}
	}

	ids := make([]string, len(doc.Columns))
	for i, c := range doc.Columns {
		ids[i] = c.ID
	}

	table, err := results.NewTable(doc.Time, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	for _, c := range doc.Columns {
		if err := table.SetColumn(c.ID, c.Values); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
	}

	return table, nil
}

// LoadTopologyFile reads link topology from a JSON file.
func LoadTopologyFile(filename string) ([]types.LinkInfo, error) {
	file, err := os.Open(filename)
	if err != nil {
		slog.Error("could not open topology file", slog.String("file", filename))
		return nil, err
	}
	defer file.Close()

	var docs []linkDoc
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&docs); err != nil {
		slog.Error("could not decode topology file", slog.String("file", filename))
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}

	links := make([]types.LinkInfo, len(docs))
	for i, d := range docs {
		if d.Length <= 0 {
			return nil, fmt.Errorf("%s: link %q length must be positive, got %v", filename, d.Name, d.Length)
		}
		links[i] = types.LinkInfo{
			Name:      d.Name,
			StartNode: d.Start,
			EndNode:   d.End,
			Length:    d.Length,
		}
	}

	return links, nil
}
