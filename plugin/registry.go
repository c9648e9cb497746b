package plugin

import "fmt"

// Transformers is a global map of SeriesTransformer plugins.
var Transformers = map[string]func() SeriesTransformer{
	"cumsum": func() SeriesTransformer {
		return &CumSumPlugin{}
	},
	"running_max": func() SeriesTransformer {
		return &RunningMaxPlugin{}
	},
}

func TransformerLookup(name string) (SeriesTransformer, error) {
	factory, ok := Transformers[name]
	if !ok {
		return nil, fmt.Errorf("unknown transformer: %s", name)
	}
	return factory(), nil
}
