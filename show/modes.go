package show

import (
	"github.com/katalvlaran/heartlight/fixture"
	"github.com/katalvlaran/heartlight/mapfunc"
	"github.com/katalvlaran/heartlight/pipeline"
)

// builtinModes returns the stock colour moods. Every chain takes the
// reduced BPM vector, rescales the configured BPM range onto 0..1, fans
// the result out into one stack per channel of set, and clips the
// outcome back into 0..1. Single-channel sets render the first stack
// only; RGB drops the white stack.
func builtinModes(set fixture.ChannelSet, minBPM, maxBPM float64) map[string]pipeline.Chain {
	lit := pipeline.Lit
	return map[string]pipeline.Chain{
		// Steady red bed; green eases in as the pulse slows.
		"glow": modeChain(set, minBPM, maxBPM,
			pipeline.Chain{mapfunc.Ones()},
			pipeline.Chain{mapfunc.FlipRange(lit(0), lit(1)), mapfunc.Offset(lit(0.05)), mapfunc.Scale(lit(0.6))},
			pipeline.Chain{mapfunc.Zeros()},
			pipeline.Chain{mapfunc.Zeros()},
		),
		// Green and blue swing against each other with the rate.
		"wave": modeChain(set, minBPM, maxBPM,
			pipeline.Chain{mapfunc.Zeros()},
			pipeline.Chain{mapfunc.Sine(), mapfunc.FlipRange(lit(0), lit(1)), mapfunc.Offset(lit(-0.1))},
			pipeline.Chain{mapfunc.Cosine()},
			pipeline.Chain{mapfunc.Zeros()},
		),
		// Red bed under a dimmed green and a folded cosine blue.
		"ember": modeChain(set, minBPM, maxBPM,
			pipeline.Chain{mapfunc.Ones()},
			pipeline.Chain{mapfunc.FlipRange(lit(0.01265), lit(1)), mapfunc.Offset(lit(-0.2))},
			pipeline.Chain{mapfunc.Cosine(), mapfunc.FlipRange(lit(0.56142), lit(1))},
			pipeline.Chain{mapfunc.Zeros()},
		),
		// Slow red swell over an offset cosine green.
		"drift": modeChain(set, minBPM, maxBPM,
			pipeline.Chain{mapfunc.Sine(), mapfunc.Scale(lit(1.5)), mapfunc.Offset(lit(0.6))},
			pipeline.Chain{mapfunc.Offset(lit(0.1)), mapfunc.Cosine()},
			pipeline.Chain{mapfunc.Zeros()},
			pipeline.Chain{mapfunc.Zeros()},
		),
	}
}

// modeChain wraps per-channel stacks into a full mapping chain for set.
// Stacks are given in red, green, blue, white order and sliced down to
// the set's channel count.
func modeChain(set fixture.ChannelSet, minBPM, maxBPM float64, stacks ...pipeline.Chain) pipeline.Chain {
	chain := pipeline.Chain{
		mapfunc.RangeScaler(pipeline.Lit(0), pipeline.Lit(1), pipeline.Lit(minBPM), pipeline.Lit(maxBPM)),
	}
	if n := set.Count(); n == 1 {
		chain = append(chain, stacks[0]...)
	} else {
		chain = append(chain, mapfunc.Expand(stacks[:n]...))
	}
	return append(chain, mapfunc.Clip(pipeline.Lit(0), pipeline.Lit(1)))
}
