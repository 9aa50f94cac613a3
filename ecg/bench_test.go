package ecg_test

import (
	"testing"

	"github.com/katalvlaran/heartlight/ecg"
	"github.com/katalvlaran/heartlight/pipeline"
)

// BenchmarkDetect measures the full band-energy pass over a typical
// raw-signal window, the per-tick cost of each detection task.
func BenchmarkDetect(b *testing.B) {
	in := pipeline.Vector(sine(10, 130, 1024))
	chain := pipeline.Chain{ecg.Detect(5, 15, 0.15, 130)}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pipeline.ApplyValue(in, chain); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRate measures beat extraction over a minute of pre-detected
// energy at 130 Hz.
func BenchmarkRate(b *testing.B) {
	xs := make([]float64, 130*60)
	for i := 65; i < len(xs); i += 130 {
		xs[i] = 10
	}
	in := pipeline.Vector(xs)
	chain := pipeline.Chain{ecg.Rate(3, 130, ecg.AverageMedian)}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pipeline.ApplyValue(in, chain); err != nil {
			b.Fatal(err)
		}
	}
}
