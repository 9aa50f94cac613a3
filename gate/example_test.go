package gate_test

import (
	"fmt"

	"github.com/katalvlaran/heartlight/fifo"
	"github.com/katalvlaran/heartlight/gate"
)

// ExampleGate shows update-mode gating against a rolling buffer: the
// guarded work runs only when the buffer actually received new data.
func ExampleGate() {
	buf, _ := fifo.New(4)
	g, _ := gate.New(gate.ModeUpdate)

	buf.Enqueue(0.5)
	fmt.Println("tick 1:", g.Admit(buf.Version()))
	fmt.Println("tick 2:", g.Admit(buf.Version())) // nothing new

	buf.Enqueue(0.7)
	fmt.Println("tick 3:", g.Admit(buf.Version()))

	// Output:
	// tick 1: true
	// tick 2: false
	// tick 3: true
}
