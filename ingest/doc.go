// Package ingest bridges the signal transport to rolling buffers: it
// subscribes to broker subjects carrying batched samples and enqueues
// them into fifo buffers for the derivation pipelines.
//
// 🚀 What is ingest?
//
//	The inbound edge of the show.  An acquisition bridge publishes raw
//	signal batches to a NATS subject as little-endian float32 frames;
//	ingest.Source subscribes, decodes each frame and feeds the samples
//	into the channel's raw buffer.  Everything downstream (detection,
//	heart rate, mapping) only ever sees fifo buffers and never touches
//	the wire.
//
// ✨ Key features:
//   - production dial defaults: client name, 3 s timeout, 500 ms
//     reconnect wait, unlimited reconnects
//   - one Source, many subjects: each Subscribe owns its buffer as the
//     single producer
//   - data-quality policy: frames that do not divide into whole samples
//     are logged and dropped, never partially consumed
//   - Close drains, so in-flight frames land before shutdown
//
// ⚙️ Usage:
//
//	src, err := ingest.Connect("nats://127.0.0.1:4222")
//	if err != nil { ... }
//	defer src.Close()
//
//	raw, _ := fifo.New(1024)
//	if err := src.Subscribe("ecg.raw", raw); err != nil { ... }
//
// The Conn interface keeps the broker swappable: tests inject a fake
// connection and push frames straight into the handler.
package ingest
