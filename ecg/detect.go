package ecg

import (
	"fmt"

	"github.com/katalvlaran/heartlight/pipeline"
)

// Detect builds the QRS-emphasis step of the Pan–Tompkins chain: a
// zero-phase band-pass between low and high Hz, first difference,
// squaring, and a centred moving average of window seconds. The output
// is one sample shorter than the input (the difference step); inputs
// shorter than two samples yield an empty vector, so warming buffers
// degrade instead of failing.
func Detect(low, high, window float64, rate int) pipeline.Step {
	return pipeline.Step{
		Name: "qrsDetect",
		Fn: func(v pipeline.Value, _ *pipeline.Stats) (pipeline.Value, error) {
			xs, ok := v.Floats()
			if !ok {
				return pipeline.Value{}, fmt.Errorf("%w: qrsDetect got %s", ErrKind, v)
			}
			if low <= 0 || high <= low || high >= float64(rate)/2 {
				return pipeline.Value{}, fmt.Errorf("%w: %g..%g Hz at %d Hz sampling",
					ErrBadBand, low, high, rate)
			}
			if len(xs) < 2 {
				return pipeline.Vector(nil), nil
			}

			filtered := zeroPhase(xs, highpass(low, rate), lowpass(high, rate))
			der := diff(filtered)
			for i, d := range der {
				der[i] = d * d
			}
			return pipeline.Vector(movingAverage(der, int(window*float64(rate)))), nil
		},
	}
}
