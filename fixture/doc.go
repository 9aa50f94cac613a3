// Package fixture models the state of a lighting fixture array: per
// fixture one intensity channel and four colour channels, written in
// blocks (ChannelSet) and double-buffered so senders can ramp from the
// previous state to the current one.
//
// 🚀 What it does
//
//   - Array keeps current and previous values for every base channel of
//     every fixture. Apply(set, channels) overwrites one block and files
//     the overwritten values as previous.
//   - ChannelSet names the writable blocks: the five single channels,
//     RGB, and RGBW. Count() reports how many arrays a block expects.
//   - Anchor fixtures (a subset of the ids) mark spatial reference
//     points; trigger effects pulse them.
//
// ✨ Guarantees
//
//   - Apply validates shape before touching state: exactly Count()
//     arrays, each Size() long, or ErrShapeMismatch.
//   - Writes are atomic under a write lock; Current and Previous return
//     copies, so readers never alias live state.
//
// ⚙️ Typical use
//
//	arr, _ := fixture.New([]int{11, 12, 13, 14}, []int{12})
//	_ = arr.Apply(fixture.RGB, [][]float64{red, green, blue})
//	cur, _ := arr.Current(fixture.RGB)
package fixture
