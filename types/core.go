package types

/*

	These are the "immutable" core types of Aquanet,
	provided for cross-package use (e.g. Plugins) and testing.

	There are no functions defined here.
	Struct constructors are housed in their own packages.
	Methods taking these types should create local aliases,
	for example: type ContamEvents []At.ContamEvent

*/

// LinkInfo is the tabular view of one link's topology:
// the defined start→end orientation and the physical length.
// Flow rate sign in simulator results is relative to this orientation.
type LinkInfo struct {
	Name      string
	StartNode string
	EndNode   string
	Length    float64 // meters
}

// The ContamEvent is the building block of an assessment timeline.
// When a pipe is first marked contaminated, the event starts;
// once marked, a pipe stays marked, so events only ever add length.
type ContamEvent struct {
	Time        float64 // simulation seconds
	Link        string  // which pipe crossed the detection limit
	AddedLength float64 // meters newly marked at this step
	Extent      float64 // running total extent at this step
	Scenario    string  // identifies the source scenario
}

// MetricSample is one point of a computed metric series,
// the unit of storage for output adapters.
type MetricSample struct {
	Scenario string
	Metric   string
	Time     float64 // simulation seconds
	Value    float64
	Recorded int64 // Unix nanosecond wall-clock timestamp
}

// NodeKind classifies a network node.
type NodeKind int

const (
	Junction NodeKind = iota
	Tank
	Reservoir
)

// LinkKind classifies a network link. Only pipes carry length
// into the extent-of-contamination metrics.
type LinkKind int

const (
	Pipe LinkKind = iota
	Pump
	Valve
)

// These are the metric names used for report series, storage keys,
// and the HTTP series API.
const (
	MetricMassConsumed   = "mass_consumed"
	MetricVolumeConsumed = "volume_consumed"
	MetricExtentIndirect = "extent_indirect"
	MetricExtentDirect   = "extent_direct"
)
