package fixture_test

import (
	"fmt"

	"github.com/katalvlaran/heartlight/fixture"
)

// ExampleArray applies an RGB block and reads back the current and
// previous red channel.
func ExampleArray() {
	arr, _ := fixture.New([]int{11, 12, 13}, []int{12})

	_ = arr.Apply(fixture.RGB, [][]float64{
		{1, 0.5, 0},
		{0, 0.5, 1},
		{0, 0, 0},
	})
	_ = arr.Apply(fixture.Red, [][]float64{{0.2, 0.2, 0.2}})

	cur, _ := arr.Current(fixture.Red)
	prev, _ := arr.Previous(fixture.Red)
	fmt.Println("anchors:", arr.AnchorPositions())
	fmt.Println("current:", cur[0])
	fmt.Println("previous:", prev[0])

	// Output:
	// anchors: [1]
	// current: [0.2 0.2 0.2]
	// previous: [1 0.5 0]
}
