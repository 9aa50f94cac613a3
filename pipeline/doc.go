// Package pipeline applies ordered transform chains to buffered signal
// data, with call-time statistic arguments, change gating, and non-finite
// value sanitization.
//
// 🚀 What is a transform chain?
//
// A Chain is a list of Steps. Each Step wraps a function from one
// intermediate Value (scalar, vector, or tuple of channel vectors) to the
// next. Chains express everything from "band-pass, differentiate, square,
// smooth" signal derivations to "rescale, expand to RGBW, clip" colour
// mappings, using one uniform execution contract:
//
//   - statistic arguments (min, max, mean, std, median) are resolved per
//     step against the data flowing through that step, so a parameter can
//     track the live signal range without the caller precomputing it;
//   - NaN and ±Inf never propagate: arrays are sanitized to 0 / 1 / −1
//     before the first step and after every step;
//   - a step producing multiple outputs (peak detection returns values
//     and indices together) can select one with OutputIndex;
//   - application never mutates the source buffer.
//
// ✨ Key features:
//
//   - Apply / ApplyValue: run a chain over a buffer snapshot or a Value.
//   - ApplyGated: run only when a gate admits the tick, reporting fired
//     separately from the result so "no output" is unambiguous.
//   - WithFanout: after an expansion splits one vector into per-channel
//     arrays, apply each step to every channel independently.
//   - Cell: versioned hot-swap container; mapper loops poll it and pick
//     up replacement chains without restarting.
//
// ⚙️ Usage:
//
//	chain := pipeline.Chain{
//		mapfunc.RangeScaler(pipeline.Lit(0), pipeline.Lit(1), pipeline.Auto(), pipeline.Auto()),
//		mapfunc.Scale(pipeline.Lit(100)),
//	}
//	out, err := pipeline.Apply(buf, chain)
//
// Statistics of an empty finite set default to 0; the pipeline prefers
// degraded output over halting mid-performance.
package pipeline
