package mapfunc

import (
	"fmt"

	"github.com/katalvlaran/heartlight/pipeline"
)

// Expand performs dimensionality expansion: each chain maps its own copy
// of the input to one output channel, and the results come back as a
// tuple in chain order (RGB = three chains, RGBW = four). Every chain
// runs with full pipeline semantics, so per-channel statistic arguments
// resolve against that channel's intermediate.
func Expand(chains ...pipeline.Chain) pipeline.Step {
	return pipeline.Step{Name: "expand", Fn: func(v pipeline.Value, _ *pipeline.Stats) (pipeline.Value, error) {
		members := make([]pipeline.Value, len(chains))
		for i, chain := range chains {
			out, err := pipeline.ApplyValue(v, chain)
			if err != nil {
				return pipeline.Value{}, fmt.Errorf("channel %d: %w", i, err)
			}
			members[i] = out
		}
		return pipeline.Tuple(members...), nil
	}}
}
