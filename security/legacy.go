package security

import (
	"github.com/marisol/aquanet/network"
	"github.com/marisol/aquanet/results"
)

// ExtentContaminant walks the network topology once per time step:
// each node accumulates the summed length of pipes it feeds under the
// instantaneous flow direction, masked by that node's quality
// exceeding the detection limit. The result is per-node, per-step
// pipe length rather than a single extent series.
//
// Deprecated: this topology-walking variant is slower than the
// tabular methods and kept only for its legacy per-node output shape.
// Prefer ExtentContaminationIndirect or ExtentContaminationDirect.
func ExtentContaminant(nodeQuality, flowRate *results.Table,
	wn *network.Network, detectionLimit float64) (*results.Table, error) {

	times := nodeQuality.Times()
	lengths := nodeQuality.EmptyLike()

	// Pipe length is attributed to the flow-directed upstream node.
	// Zero flow keeps the defined start→end orientation.
	for _, pipe := range wn.Pipes() {
		flow, err := flowRate.Column(pipe.Name)
		if err != nil {
			return nil, err
		}
		for row := range times {
			upstream := pipe.StartNode
			if flow[row] < 0 {
				upstream = pipe.EndNode
			}
			if !lengths.HasColumn(upstream) {
				// upstream is a tank or reservoir outside the
				// junction-only quality table
				continue
			}
			v, err := lengths.Value(row, upstream)
			if err != nil {
				return nil, err
			}
			if err := lengths.Set(row, upstream, v+pipe.Length); err != nil {
				return nil, err
			}
		}
	}

	ec := nodeQuality.EmptyLike()
	for _, id := range nodeQuality.IDs() {
		q, err := nodeQuality.Column(id)
		if err != nil {
			return nil, err
		}
		l, err := lengths.Column(id)
		if err != nil {
			return nil, err
		}
		out, err := ec.Column(id)
		if err != nil {
			return nil, err
		}
		for row := range q {
			if q[row] > detectionLimit {
				out[row] = l[row]
			}
		}
	}

	return ec, nil
}
