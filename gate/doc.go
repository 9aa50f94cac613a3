// Package gate decides when downstream work is allowed to run.
//
// A Gate answers one question: "should this tick recompute, or skip?".
// Two admission modes cover the pipeline's needs:
//
//   - update: admit when any observed version counter changed since the
//     last admitted tick. Version counters come from rolling buffers, so
//     this mode means "recompute only on fresh data".
//   - time: admit on a fixed wall-clock cadence, independent of data
//     arrival. Useful for decay-style mappings that must keep moving
//     even when the signal stalls.
//
// 🚀 What is a Gate?
//
// Continuous signal processing runs in tight loops. Recomputing a
// transform chain on every loop iteration wastes work when the inputs
// have not changed, and drives lighting hardware with redundant frames.
// A Gate sits in front of the expensive step and admits only the ticks
// that matter.
//
// ✨ Key features:
//
//   - First observation always admits, in both modes.
//   - Update mode compares whole version vectors: any element change or
//     a change in vector length admits the tick.
//   - Time mode keeps cadence by advancing the last-fire mark one
//     interval per admission, so a small processing delay does not
//     accumulate. Only when the caller falls more than a full interval
//     behind does the mark snap to the present.
//   - Injectable clock for deterministic tests.
//
// ⚙️ Usage:
//
//	g, err := gate.New(gate.ModeUpdate)
//	if err != nil { ... }
//	for {
//		if g.Admit(buf.Version()) {
//			recompute()
//		}
//	}
//
// A Gate is owned by a single update loop and is not safe for
// concurrent use.
package gate
