package wave_test

import (
	"fmt"

	"github.com/katalvlaran/heartlight/wave"
)

// ExampleHeartbeat synthesizes two seconds at 60 BPM and counts the R
// peaks — one per beat, right where the detection steps expect them.
func ExampleHeartbeat() {
	trace, _ := wave.Heartbeat(2, 100, 60)

	peaks := 0
	for _, v := range trace {
		if v > 0.9 {
			peaks++
		}
	}
	fmt.Println("samples:", len(trace))
	fmt.Println("r peaks:", peaks)

	// Output:
	// samples: 200
	// r peaks: 2
}

// ExampleTemplate cuts a reference cycle for shape matching; the R wave
// lands mid-window.
func ExampleTemplate() {
	tmpl, _ := wave.Template(8)

	peak := 0
	for i, v := range tmpl {
		if v > tmpl[peak] {
			peak = i
		}
	}
	fmt.Printf("peak at sample %d of %d\n", peak, len(tmpl))

	// Output:
	// peak at sample 4 of 8
}
