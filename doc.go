// Package heartlight turns live physiological signals into lighting
// control: streaming ECG in, fixture colour and intensity frames out.
//
// 🚀 What is heartlight?
//
//	A pipeline toolkit for biosignal-driven light shows.  Raw ECG
//	samples stream into rolling buffers; transform chains derive QRS
//	energy and heart rate; mappers paint a fixture rig continuously
//	from the derived features and fire one-shot pulses on every
//	detected beat.  Each stage is its own package, so the pieces
//	compose into anything from a two-line demo to a multi-performer
//	installation.
//
// ✨ Why choose heartlight?
//
//   - Deterministic numerics – NaN/±Inf are sanitized at every step,
//     so a noisy sensor can never poison a running show
//   - Cheap change detection – version counters + gates mean idle
//     signals cost almost nothing
//   - Hot-swappable looks – mapping chains swap atomically mid-show
//   - Single-writer / multi-reader locking throughout
//
// Everything is organized under small focused subpackages:
//
//	fifo/     — fixed-capacity rolling sample buffers with versions
//	gate/     — update- and interval-based recompute admission
//	pipeline/ — values, stat args, step chains, gated application
//	mapfunc/  — the step library (sine, clip, interpolate, expand …)
//	ecg/      — band energy (QRS emphasis) + windowed heart rate
//	feature/  — many buffers → one feature vector + spatial expansions
//	fixture/  — rig state: ids, anchors, current/previous channel grids
//	mapper/   — continuous painting + centre-cross trigger polling
//	dtw/      — elastic beat-shape matching for trigger confirmation
//	ingest/   — NATS sample ingestion (little-endian float32 frames)
//	sink/     — frame emission: log, NATS, ramps and pulses
//	show/     — YAML config + orchestration of the whole pipeline
//	wave/     — deterministic synthetic ECG for demos and tests
//
// Quick ASCII picture of a running show:
//
//	ecg ──► fifo ──► energy ──► heart rate ──► feature vector
//	              └─► peaks ──► trigger ──► pulse        │
//	                                                     ▼
//	                      sink ◄── fixture ◄── continuous mapper
//
// Dive into examples/ for a full broker-backed live show and a
// no-transport pipeline walkthrough.
//
//	go get github.com/katalvlaran/heartlight
package heartlight
