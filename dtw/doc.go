// Package dtw measures how alike two sample windows are in shape,
// tolerating tempo differences, via dynamic time warping.
//
// 🚀 What is dtw?
//
//	A shape comparator for beat windows.  Two recordings of the same
//	waveform rarely line up sample for sample: a faster pulse
//	compresses the cycle, a slower one stretches it.  Dynamic time
//	warping finds the cheapest elastic alignment between two windows
//	and reports its cost, so "same shape, different speed" scores low
//	while "different shape" scores high.  The show uses it to confirm
//	that whatever just swept past a trigger point actually looks like
//	a heartbeat before pulsing a fixture.
//
// ✨ Key features:
//   - Distance / Normalized — raw and length-independent warp cost
//   - Sakoe–Chiba band via WithWindow to keep alignments local
//   - WithSlopePenalty to tax insert/delete steps and favour lockstep
//   - Match — z-normalised shape comparison against a threshold, so
//     amplitude and offset differences do not matter
//   - Confirm — a ready-made trigger-chain link gating a crossing
//     trigger on beat morphology
//   - O(n·m) time, two-row O(min(n,m)) memory
//
// ⚙️ Usage:
//
//	d, err := dtw.Normalized(live, template)        // 0 = identical
//	ok, err := dtw.Match(live, template, 0.35)      // shape gate
//
//	confirm, err := dtw.Confirm(rawBuf, template, 0.35)
//	trig, err := mapper.NewTrigger(rawBuf, query,
//	        []mapper.TriggerFunc{cross.Fn, confirm}, action)
//
// Empty-buffer and too-short-window conditions never fire the gate;
// they are degraded data, not errors.
package dtw
