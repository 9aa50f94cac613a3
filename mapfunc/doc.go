// Package mapfunc is the step library for transform chains: elementwise
// curves, range rescaling, reductions, spatial interpolation, and
// dimensionality expansion from one feature vector to per-channel colour
// arrays.
//
// 🚀 What lives here?
//
// Every constructor returns a pipeline.Step, so mapping behaviour is
// assembled declaratively:
//
//	chain := pipeline.Chain{
//		mapfunc.RangeScaler(pipeline.Lit(0), pipeline.Lit(1), pipeline.Lit(60), pipeline.Lit(120)),
//		mapfunc.Expand(redChain, greenChain, blueChain, whiteChain),
//		mapfunc.Clip(pipeline.Lit(0), pipeline.Lit(1)),
//		mapfunc.Scale(pipeline.Lit(100)),
//	}
//
// ✨ Key features:
//
//   - Elementwise steps (Identity, Sine, Cosine, Minus, Zeros, Ones,
//     Offset, Scale, Clip, FlipRange) accept scalars and vectors alike.
//   - RangeScaler derives old bounds from the data itself when given
//     Auto arguments, per member under fanout.
//   - Interpolate1D spreads k anchor values across a larger span with
//     wrap (circular) or reflect (slope-continuing) edge policy;
//     Fill1D floods a span with one resolved value.
//   - Expand applies one chain per colour channel to independent copies
//     of the input and returns a tuple of channel vectors.
//   - Reductions (Mean, Median) collapse a vector to a scalar over its
//     finite values, defaulting to 0 when none remain.
//
// Tuple intermediates are not consumed directly by elementwise steps;
// mapper loops apply chains with pipeline.WithFanout so each channel
// vector passes through on its own.
package mapfunc
