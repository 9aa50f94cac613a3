// Package wave synthesizes deterministic physiological test signals,
// so demos and tests can run without a sensor on anyone's chest.
//
// 🚀 What is wave?
//
//	A tiny signal forge.  Beat samples one idealised PQRST cardiac
//	cycle at a normalised phase; Heartbeat strings cycles together
//	into a trace of any length, sample rate and beat frequency;
//	Template cuts a single R-centred cycle, the reference shape for
//	beat matching.  Optional reproducible noise and baseline drift
//	make the trace awkward in exactly the ways a live electrode is.
//	Typical uses:
//	  • feeding the ecg derivation steps in tests at a known BPM
//	  • synthetic wearers in broker-backed demos
//	  • quick traces for poking at mapping chains
//
// ✨ Key features:
//   - strict determinism: same arguments, same trace, every run
//   - seeded gaussian noise via WithNoise (sigma, seed)
//   - linear baseline drift via WithTrend, for band-pass rejection checks
//   - R wave normalised to 1, so thresholds are easy to reason about
//   - O(n) time, no global state
//
// ⚙️ Usage:
//
//	trace, err := wave.Heartbeat(10, 250, 72, wave.WithNoise(0.02, 1))
//	if err != nil { ... }
//	// stream trace into a fifo.Buffer, or straight into a chain
//
// For open-ended streams (a demo that runs until interrupted), call
// Beat with a running phase accumulator instead of pregenerating.
package wave
