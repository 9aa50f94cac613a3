package pipeline_test

import (
	"testing"

	"github.com/katalvlaran/heartlight/fifo"
	"github.com/katalvlaran/heartlight/pipeline"
)

// BenchmarkApply measures a three-step chain over a full signal window,
// the hot path of every derivation task.
func BenchmarkApply(b *testing.B) {
	buf, _ := fifo.New(256)
	for i := 0; i < 256; i++ {
		buf.Enqueue(float64(i % 17))
	}
	chain := pipeline.Chain{double(), offsetByMean(), double()}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pipeline.Apply(buf, chain); err != nil {
			b.Fatal(err)
		}
	}
}
