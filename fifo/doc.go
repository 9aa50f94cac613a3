// Package fifo provides a fixed-capacity rolling buffer for streaming
// numeric samples, with a monotonic version counter for cheap staleness
// detection by downstream consumers.
//
// 🚀 What is fifo?
//
//	A rolling window over a live signal.  Producers enqueue samples as
//	they arrive; once the buffer is at capacity the oldest sample is
//	evicted for every new one.  Every mutation bumps a version counter,
//	so any number of consumers can ask "has anything changed since I
//	last looked?" without copying or hashing the contents.  Typical uses:
//	  • rolling ECG / sensor windows feeding derivation pipelines
//	  • derived-feature buffers (heart rate, peak positions)
//	  • cheap change detection via gate.Gate
//
// ✨ Key features:
//   - strict FIFO eviction: len(contents) ≤ capacity, oldest out first
//   - version counter: +1 per enqueued scalar, never on reads
//   - wholesale Replace with optional capacity resize
//   - centre index (⌊capacity/2⌋) for centre-relative triggers
//   - single-writer / multi-reader safe (RWMutex inside)
//
// ⚙️ Usage:
//
//	buf, err := fifo.New(256)
//	if err != nil { ... }
//	buf.Enqueue(samples...)          // producer task
//	window := buf.Contents()         // consumer task, returns a copy
//	if buf.Full() { ... }            // warm-up check
//
// The Source interface abstracts "something with numeric contents" so
// pipelines accept either a *Buffer or a raw Slice interchangeably.
package fifo
