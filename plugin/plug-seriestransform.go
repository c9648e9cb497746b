package plugin

/*
	Series transformers

	Derive report series from raw metric series

	~~~ Plugin Reference Implementations ~~~
*/

import (
	"errors"

	"github.com/marisol/aquanet/results"
)

// CumSumPlugin turns a per-step series into its running total,
// e.g. per-step consumed mass into cumulative mass consumed.
type CumSumPlugin struct{}

// Transform is the main wrapper for the interface.
func (p *CumSumPlugin) Transform(metric string, s *results.Series) (*results.Series, error) {
	if s == nil {
		return nil, errors.New("nil series")
	}
	return s.CumSum(), nil
}

func (p *CumSumPlugin) Type() string { return "cumsum" }

// RunningMaxPlugin keeps the cumulative maximum of a series.
// Extent series are already non-decreasing by construction, so this
// is an identity for them; it exists for raw per-step series.
type RunningMaxPlugin struct{}

// Transform is the main wrapper for the interface.
func (p *RunningMaxPlugin) Transform(metric string, s *results.Series) (*results.Series, error) {
	if s == nil {
		return nil, errors.New("nil series")
	}
	return s.RunningMax(), nil
}

func (p *RunningMaxPlugin) Type() string { return "running_max" }
