package plugin

/*

	The Adapter sits aside /aquanet/
	Contains core interfaces for Plugin

*/

import (
	"github.com/marisol/aquanet/results"
	At "github.com/marisol/aquanet/types"
)

// SeriesTransformer derives a new metric series from a computed one,
// for example the running total of per-step consumed mass. The
// metric name is passed through for logging and storage keys.
type SeriesTransformer interface {
	Transform(metric string, s *results.Series) (*results.Series, error)
	Type() string // Unique ID for the transformer
}

// OutputAdapter can be used to define a place for computed metric
// samples to go, point-by-point or in batches if supported by the
// output type.
type OutputAdapter interface {
	WriteSample(sample *At.MetricSample) error                 // Write singleton sample data
	WriteBatch(samples []*At.MetricSample) error               // Write batches of samples
	QueryRange(start, end float64) ([]*At.MetricSample, error) // Simulation-time range query tool
	Flush() error                                              // Flush any buffered data
	Close() error                                              // Close the adapter and release resources
	Type() string                                              // ID for output
}
