package network

// Summary is a one-shot statistical description of a network model:
// element counts, clock settings, total pipe length, and system
// demand totals derived from the junction demand lists.
type Summary struct {
	Nodes      int
	Junctions  int
	Tanks      int
	Reservoirs int
	Links      int
	Pipes      int
	Pumps      int
	Valves     int
	Patterns   int
	Sources    int

	Duration      float64 // seconds
	PatternStep   float64 // seconds
	HydraulicStep float64 // seconds
	QualityStep   float64 // seconds

	TotalPipeLength    float64 // meters
	CumulativeDemand   float64 // m3 over the full duration
	AverageDailyDemand float64 // m3 per day
}

// Summarize describes the network. Cumulative system demand samples
// every junction demand list on the pattern-step grid over the full
// duration and integrates; negative aggregates (net inflow) are
// clipped to zero per step so the total reflects water actually
// consumed.
func (n *Network) Summarize() Summary {
	s := Summary{
		Nodes:      n.NumNodes(),
		Junctions:  n.NumJunctions(),
		Tanks:      n.NumTanks(),
		Reservoirs: n.NumReservoirs(),
		Links:      n.NumLinks(),
		Pipes:      n.NumPipes(),
		Pumps:      n.NumPumps(),
		Valves:     n.NumValves(),
		Patterns:   n.NumPatterns(),
		Sources:    n.NumSources(),

		Duration:      n.Options.Duration,
		PatternStep:   n.Options.PatternStep,
		HydraulicStep: n.Options.HydraulicStep,
		QualityStep:   n.Options.QualityStep,

		TotalPipeLength: n.TotalPipeLength(),
	}

	if n.Options.Duration <= 0 || n.Options.PatternStep <= 0 {
		return s
	}

	cum := 0.0
	end := n.Options.Duration - n.Options.PatternStep
	for _, node := range n.Nodes() {
		if node.Demands == nil || node.Demands.Len() == 0 {
			continue
		}
		for _, v := range node.Demands.GetValues(0, end, n.Options.PatternStep) {
			if v > 0 {
				cum += v
			}
		}
	}
	s.CumulativeDemand = cum * n.Options.PatternStep
	s.AverageDailyDemand = s.CumulativeDemand / n.Options.Duration * 86400

	return s
}
