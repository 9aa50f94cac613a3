package dtw

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/heartlight/fifo"
)

// Match reports whether window and template share a shape. Both sides
// are z-normalised first, so amplitude and baseline offset do not
// matter, and the normalised warp distance between them is compared
// against maxDist. Thresholds are scale-free: 0 demands an exact shape,
// values around 0.3 accept tempo-warped copies of the same waveform.
// Windows carrying non-finite samples never match.
func Match(window, template []float64, maxDist float64, opts ...Option) (bool, error) {
	if maxDist < 0 {
		return false, fmt.Errorf("%w: %g", ErrBadThreshold, maxDist)
	}
	d, err := Normalized(zNormalize(window), zNormalize(template), opts...)
	if err != nil {
		return false, err
	}
	return d <= maxDist, nil
}

// Confirm builds a trigger-chain link that double-checks a crossing
// trigger on beat morphology: chained after the crossing function, it
// receives the crossing bool and, when true, Matches the
// template-length slice of ref centred on its centre index against
// template. The action then only fires for crossings that also look
// like the template — a spike of electrode noise sweeping past the
// centre stays dark.
//
// Reference windows that are empty or too short for the template never
// confirm. The threshold and options are validated here, so a
// misconfigured gate fails at wiring time, not mid-show.
func Confirm(ref fifo.Source, template []float64, maxDist float64, opts ...Option) (func(v any) (any, error), error) {
	if ref == nil {
		return nil, ErrNilReference
	}
	if len(template) == 0 {
		return nil, ErrEmpty
	}
	if _, err := Match(template, template, maxDist, opts...); err != nil {
		return nil, err
	}

	tmpl := zNormalize(template)
	return func(v any) (any, error) {
		crossed, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrNotCrossing, v)
		}
		if !crossed {
			return false, nil
		}

		xs := ref.Contents()
		centre := len(xs) / 2
		if c, ok := ref.(interface{ CentreIndex() int }); ok {
			centre = c.CentreIndex()
		}
		lo := centre - len(tmpl)/2
		hi := lo + len(tmpl)
		if lo < 0 || hi > len(xs) {
			return false, nil
		}

		d, err := Normalized(zNormalize(xs[lo:hi]), tmpl, opts...)
		if err != nil {
			return false, err
		}
		return d <= maxDist, nil
	}, nil
}

// zNormalize shifts xs to zero mean and scales it to unit deviation,
// leaving only its shape. A flat sequence has no shape and normalises
// to zeros.
func zNormalize(xs []float64) []float64 {
	out := make([]float64, len(xs))
	std := stat.PopStdDev(xs, nil)
	if std == 0 {
		return out
	}
	mean := stat.Mean(xs, nil)
	for i, x := range xs {
		out[i] = (x - mean) / std
	}
	return out
}
