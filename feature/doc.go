// Package feature aggregates independent sample streams into one spatial
// feature vector and derives per-channel expansions from it.
//
// 🚀 What it does
//
//   - Aggregator owns one slot per named channel. Recompute runs a
//     reduction chain over each channel's source and writes the scalar
//     result into that channel's slot.
//   - Sources still warming up (Full() == false) are skipped, so slots
//     hold their previous value until the source fills.
//   - RecomputeGated couples the reduction to a gate.Gate: update mode
//     recomputes only when some channel's version moved, interval mode
//     on a wall-clock cadence.
//   - SpatialExpansion fans the vector out through a chain (typically a
//     mapfunc.Expand of colour channels) and files the result under a
//     name for mappers to fetch.
//
// ✨ Guarantees
//
//   - The vector and expansions are guarded by one RWMutex: a single
//     reduction goroutine writes, any number of mapper goroutines read.
//   - Vector, Values and Expansion hand out copies, never internal
//     storage.
//   - A reduction that does not collapse to a scalar (after one
//     one-element unwrap) fails with ErrNotScalar naming the channel.
//   - Version snapshots are taken before the recompute, so writes that
//     land mid-recompute trigger the next tick instead of vanishing.
//
// ⚙️ Typical use
//
//	agg, _ := feature.New([]feature.Channel{
//		{Name: "pulse", Source: pulseBuf},
//		{Name: "breath", Source: breathBuf},
//	})
//	_ = agg.Recompute(pipeline.Chain{mapfunc.Mean()})
//	_ = agg.SpatialExpansion(rgbChain, "rgb")
package feature
