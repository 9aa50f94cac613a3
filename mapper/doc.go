// Package mapper turns derived features into lighting state: continuous
// mappings repaint fixture channels from the feature vector, trigger
// mappings fire one-shot actions when a condition crosses.
//
// 🚀 What it does
//
//   - Continuous reads the aggregator's vector or a named expansion, runs
//     it through a function chain (tuples fan out per channel), validates
//     the shape against the target ChannelSet, and writes the fixture
//     array.
//   - Trigger polls a reference/query pair through a chain of
//     TriggerFuncs; when the final bool is true it runs the bound Action
//     synchronously. Run is a supervised task: it checks its context and
//     yields on every iteration.
//   - IndexCross is the canonical trigger: signed distance from a
//     reference index to the nearest query element, firing exactly once
//     per non-positive-to-positive transition.
//
// ✨ Guarantees
//
//   - Shape errors name the observed and expected forms; a tuple never
//     passes as a single-channel result, not even with one member.
//   - Empty reference or query data is "not triggered", never an error.
//   - A trigger chain that does not end in a bool fails with ErrNotBool
//     naming the offending type.
//   - SetFunctions swaps chains atomically; in-flight evaluations finish
//     on the chain they started with.
//
// ⚙️ Typical use
//
//	cont, _ := mapper.NewContinuous(agg, fixtures, chain)
//	_ = cont.ApplyMapping(fixture.RGB, "rgb")
//
//	cross := mapper.NewIndexCross()
//	trig, _ := mapper.NewTrigger(signalBuf, mapper.QuerySource(peaksBuf),
//		[]mapper.TriggerFunc{cross.Fn}, pulseAnchor)
//	go func() { _ = trig.Run(ctx) }()
package mapper
