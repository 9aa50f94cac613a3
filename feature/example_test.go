package feature_test

import (
	"fmt"

	"github.com/katalvlaran/heartlight/feature"
	"github.com/katalvlaran/heartlight/fifo"
	"github.com/katalvlaran/heartlight/mapfunc"
	"github.com/katalvlaran/heartlight/pipeline"
)

// ExampleAggregator reduces two heart-rate buffers into a normalised
// feature vector, then expands the vector into RGB channel arrays.
func ExampleAggregator() {
	pulse, _ := fifo.New(1)
	pulse.Enqueue(60)
	breath, _ := fifo.New(1)
	breath.Enqueue(120)

	agg, _ := feature.New([]feature.Channel{
		{Name: "pulse", Source: pulse},
		{Name: "breath", Source: breath},
	})

	norm := pipeline.Chain{
		mapfunc.RangeScaler(pipeline.Lit(0), pipeline.Lit(1), pipeline.Lit(60), pipeline.Lit(120)),
	}
	_ = agg.Recompute(norm)
	fmt.Println("vector:", agg.Vector())

	rgb := pipeline.Chain{mapfunc.Expand(
		pipeline.Chain{mapfunc.Ones()},
		pipeline.Chain{mapfunc.Identity()},
		pipeline.Chain{mapfunc.Zeros()},
	)}
	_ = agg.SpatialExpansion(rgb, "rgb")

	out, _ := agg.Expansion("rgb")
	members, _ := out.Members()
	for i, m := range members {
		xs, _ := m.Floats()
		fmt.Printf("channel %d: %v\n", i, xs)
	}

	// Output:
	// vector: [0 1]
	// channel 0: [1 1]
	// channel 1: [0 1]
	// channel 2: [0 0]
}
