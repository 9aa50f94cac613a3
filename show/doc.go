// Package show assembles the whole heartlight pipeline from a YAML
// description and runs it: broker subjects stream ECG samples into
// rolling buffers, beat energy and BPM are derived per wearer, the
// reduced rates are interpolated across the fixture rig, and a colour
// mood chain plus per-beat intensity pulses drive the lighting sink.
//
// 🚀 What it does
//
//   - Load/Parse read a Config, fill defaults, and validate every knob
//     before anything is wired.
//   - New builds the stages: per-channel raw, beat-energy, BPM-history
//     and peak buffers with their gates, the feature aggregator, the
//     fixture array, the mode chains, and one crossing trigger per
//     anchor fixture, with beat-shape confirmation behind it when
//     pulse.match is set.
//   - Run subscribes the channels, blacks the rig out, and supervises
//     all stages as one group; the first failing stage stops the show.
//   - SwitchMode swaps the active colour mood while the show runs; the
//     map stage repaints on its next pass.
//
// ✨ Guarantees
//
//   - Configuration problems surface from Load or New wrapped in
//     ErrConfig, never as a dead show.
//   - Stages communicate through versioned buffers only; a stalled
//     stage skips work instead of rendering stale state twice.
//   - A mode swap repaints immediately but never replays a heart-rate
//     reduction the rig has already shown.
//   - Cancelling Run's context is a clean stop: the broker connection
//     is drained and no error is reported.
//
// ⚙️ Typical use
//
//	cfg, err := show.Load("show.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	sh, err := show.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = sh.Run(ctx)
package show
