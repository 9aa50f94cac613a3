package ingest_test

import (
	"fmt"

	"github.com/katalvlaran/heartlight/ingest"
)

func ExampleDecode() {
	frame := ingest.Encode([]float64{0.5, 1.25, -3})

	samples, ok := ingest.Decode(frame)
	fmt.Println(ok, samples)

	_, ok = ingest.Decode(frame[:5])
	fmt.Println(ok)
	// Output:
	// true [0.5 1.25 -3]
	// false
}
