package security

import (
	"fmt"

	"github.com/marisol/aquanet/results"
	"github.com/marisol/aquanet/types"
)

// ContaminationOnsets returns one event per link that ever becomes
// contaminated under the indirect (upstream-node) rule: the first
// step time and the pipe length added to the extent. Links are
// visited in input order; Extent and Scenario are left for the
// caller to fill once events are ordered in time.
func ContaminationOnsets(nodeQuality, flowRate *results.Table,
	links []types.LinkInfo, detectionLimit float64) ([]types.ContamEvent, error) {

	times := nodeQuality.Times()
	var events []types.ContamEvent

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

		for row := range times {
			hit := (flow[row] > 0 && startQ[row] > detectionLimit) ||
				(flow[row] < 0 && endQ[row] > detectionLimit)
			if hit {
				events = append(events, types.ContamEvent{
					Time:        times[row],
					Link:        link.Name,
					AddedLength: link.Length,
				})
				break
			}
		}
	}

	return events, nil
}
