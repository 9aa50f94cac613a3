package ecg_test

import (
	"fmt"

	"github.com/katalvlaran/heartlight/ecg"
	"github.com/katalvlaran/heartlight/pipeline"
)

func ExampleFindPeaks() {
	xs := []float64{0, 1, 0, 3, 1, 2, 0}
	fmt.Println(ecg.FindPeaks(xs, 0.5, 0.2, 1))
	// Output: [1 3 5]
}

func ExampleRate() {
	// Four beats, five samples apart, at 10 Hz: one beat every half
	// second, so 120 BPM.
	beats := make([]float64, 20)
	for _, i := range []int{2, 7, 12, 17} {
		beats[i] = 10
	}

	rate := ecg.Rate(2, 10, ecg.AverageMean)
	rate.OutputIndex = pipeline.OutIndex(0)

	out, err := pipeline.ApplyValue(pipeline.Vector(beats), pipeline.Chain{rate})
	if err != nil {
		fmt.Println(err)
		return
	}
	hr, _ := out.Floats()
	fmt.Println(hr)
	// Output: [120]
}
