// Package security computes water-security impact metrics from
// simulated hydraulic and quality results: contaminant mass consumed,
// contaminated volume consumed, and extent of contamination along the
// pipe network. Equations follow the EPA Water Security Toolkit
// (EPA, U.S. (2015). Water security toolkit user manual version 1.3).
//
// Every function here is a pure transform over results tables: no
// input is mutated, no state is kept between calls. Table shapes are
// a caller precondition; a missing column surfaces as a lookup error.
package security

import (
	"fmt"

	"github.com/marisol/aquanet/results"
	"github.com/marisol/aquanet/types"
)

// MassContaminantConsumed returns per-node, per-step mass of
// contaminant drawn by consumers: demand × Δt × quality, masked to
// positive demand. Negative or zero demand (inflow at a source node)
// contributes nothing.
//
// Δt is the time value at index 1 of the quality table's axis, which
// assumes the first interval equals every later one. The result axis
// is assumed uniform, not validated.
func MassContaminantConsumed(demand, quality *results.Table) (*results.Table, error) {
	times := quality.Times()
	if len(times) < 2 {
		return nil, fmt.Errorf("mass consumed needs at least 2 time steps, got %d", len(times))
	}
	deltaT := times[1]

	mc := quality.EmptyLike()
	for _, id := range quality.IDs() {
		q, err := quality.Column(id)
		if err != nil {
			return nil, err
		}
		d, err := demand.Column(id)
		if err != nil {
			return nil, err
		}
		out, err := mc.Column(id)
		if err != nil {
			return nil, err
		}
		for row := range q {
			if d[row] > 0 {
				// m3/s * s * kg/m3 -> kg
				out[row] = d[row] * deltaT * q[row]
			}
		}
	}
	return mc, nil
}

// VolumeContaminantConsumed returns per-node, per-step volume of
// contaminated water drawn by consumers: demand × Δt, masked to
// positive demand AND quality above the detection limit. The gate is
// boolean, not quality-weighted: it answers "contaminated or not",
// where MassContaminantConsumed answers "how much".
//
// Δt carries the same single-index uniform-spacing assumption as
// MassContaminantConsumed.
func VolumeContaminantConsumed(demand, quality *results.Table, detectionLimit float64) (*results.Table, error) {
	times := quality.Times()
	if len(times) < 2 {
		return nil, fmt.Errorf("volume consumed needs at least 2 time steps, got %d", len(times))
	}
	deltaT := times[1]

	vc := quality.EmptyLike()
	for _, id := range quality.IDs() {
		q, err := quality.Column(id)
		if err != nil {
			return nil, err
		}
		d, err := demand.Column(id)
		if err != nil {
			return nil, err
		}
		out, err := vc.Column(id)
		if err != nil {
			return nil, err
		}
		for row := range q {
			if d[row] > 0 && q[row] > detectionLimit {
				// m3/s * s -> m3
				out[row] = d[row] * deltaT
			}
		}
	}
	return vc, nil
}

// ExtentContaminationIndirect returns the extent of contamination
// (summed pipe length, in meters) per time step, derived from node
// quality and flow direction.
//
// A link is contaminated at a step when its instantaneous upstream
// node (the start node under positive flow, the end node under
// negative) carries quality above the detection limit. Zero flow contributes
// nothing regardless of node quality. Contamination is sticky: a
// running maximum along the time axis keeps each link marked from
// its first contaminated step onward.
func ExtentContaminationIndirect(nodeQuality, flowRate *results.Table,
	links []types.LinkInfo, detectionLimit float64) (*results.Series, error) {

	times := nodeQuality.Times()
	extent := make([]float64, len(times))

	for _, link := range links {
		flow, err := flowRate.Column(link.Name)
		if err != nil {
			return nil, fmt.Errorf("flow rate: %w", err)
		}
		startQ, err := nodeQuality.Column(link.StartNode)
		if err != nil {
			return nil, fmt.Errorf("link %q start node: %w", link.Name, err)
		}
		endQ, err := nodeQuality.Column(link.EndNode)
		if err != nil {
			return nil, fmt.Errorf("link %q end node: %w", link.Name, err)
		}

		contaminated := false
		for row := range times {
			if !contaminated {
				switch {
				case flow[row] > 0 && startQ[row] > detectionLimit:
					contaminated = true
				case flow[row] < 0 && endQ[row] > detectionLimit:
					contaminated = true
				}
			}
			if contaminated {
				extent[row] += link.Length
			}
		}
	}

	return results.NewSeries(times, extent)
}

// ExtentContaminationDirect returns the extent of contamination per
// time step from link quality alone: a link is contaminated when its
// own (simulator-averaged) quality exceeds the detection limit.
// The sticky running-maximum accumulation matches the indirect
// method; the two derivations agree within a bounded relative error
// but not exactly at every step.
func ExtentContaminationDirect(linkQuality *results.Table,
	linkLength map[string]float64, detectionLimit float64) (*results.Series, error) {

	times := linkQuality.Times()
	extent := make([]float64, len(times))

	for _, id := range linkQuality.IDs() {
		length, ok := linkLength[id]
		if !ok {
			return nil, fmt.Errorf("no length for link %q", id)
		}
		q, err := linkQuality.Column(id)
		if err != nil {
			return nil, err
		}

		contaminated := false
		for row := range times {
			if !contaminated && q[row] > detectionLimit {
				contaminated = true
			}
			if contaminated {
				extent[row] += length
			}
		}
	}

	return results.NewSeries(times, extent)
}
