// Package sink carries lighting frames out of the show: fixture values
// leave as Frames through a Sink, and the Ramp and Pulse effects
// compose frames over time.
//
// 🚀 What is sink?
//
//	The outbound edge.  Mappers decide fixture values; a Sink delivers
//	them.  Frame is the unit of delivery: one channel set, the fixture
//	ids, and a row of values per channel.  Ramp fades a value block
//	into another by emitting interpolated frames on a fixed step, then
//	lands exactly on the target.  Pulse flashes intensity around a
//	wait, the heartbeat effect.
//
// ✨ Key features:
//   - Sink is one method, so logs, brokers and test recorders are
//     interchangeable (Func adapts a closure)
//   - Ramp always finishes on the exact end values and honours
//     cancellation between steps
//   - Log sink for rehearsal, NATS sink publishing JSON frames for the
//     console bridge
//   - frame shapes validated against the channel set before anything
//     is sent
//
// ⚙️ Usage:
//
//	s := sink.NewLog(nil)
//	err := sink.Ramp(ctx, s, fixture.RGB, ids, prev, curr,
//		400*time.Millisecond, 40*time.Millisecond)
//	...
//	err = sink.Pulse(ctx, s, []int{anchor}, 1, 0, 80*time.Millisecond, false)
//
// Console wire syntax is deliberately out of scope: the NATS sink
// publishes neutral JSON and leaves command formatting to the bridge
// that owns the console.
package sink
