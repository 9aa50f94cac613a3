package ecg

import "math"

// biquad is one second-order IIR section with normalised coefficients
// (a0 = 1). The Butterworth corner shapes come from the standard audio
// cookbook bilinear design with Q = 1/√2.
type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64
}

func corner(fc float64, rate int) (cos, alpha float64) {
	w0 := 2 * math.Pi * fc / float64(rate)
	return math.Cos(w0), math.Sin(w0) / math.Sqrt2
}

func lowpass(fc float64, rate int) biquad {
	cos, alpha := corner(fc, rate)
	a0 := 1 + alpha
	return biquad{
		b0: (1 - cos) / 2 / a0,
		b1: (1 - cos) / a0,
		b2: (1 - cos) / 2 / a0,
		a1: -2 * cos / a0,
		a2: (1 - alpha) / a0,
	}
}

func highpass(fc float64, rate int) biquad {
	cos, alpha := corner(fc, rate)
	a0 := 1 + alpha
	return biquad{
		b0: (1 + cos) / 2 / a0,
		b1: -(1 + cos) / a0,
		b2: (1 + cos) / 2 / a0,
		a1: -2 * cos / a0,
		a2: (1 - alpha) / a0,
	}
}

// run filters xs through the section (direct form I, zero initial state)
// into out, which must be len(xs) long. in and out may alias.
func (f biquad) run(xs, out []float64) {
	var x1, x2, y1, y2 float64
	for i, x := range xs {
		y := f.b0*x + f.b1*x1 + f.b2*x2 - f.a1*y1 - f.a2*y2
		x2, x1 = x1, x
		y2, y1 = y1, y
		out[i] = y
	}
}

// zeroPhase runs the sections forward, then backward, cancelling the
// cascade's phase shift so filtered peaks stay aligned with the input.
func zeroPhase(xs []float64, sections ...biquad) []float64 {
	out := append([]float64(nil), xs...)
	for _, s := range sections {
		s.run(out, out)
	}
	reverse(out)
	for _, s := range sections {
		s.run(out, out)
	}
	reverse(out)
	return out
}

func reverse(xs []float64) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// diff returns the first difference, one element shorter than xs.
func diff(xs []float64) []float64 {
	if len(xs) < 2 {
		return nil
	}
	out := make([]float64, len(xs)-1)
	for i := range out {
		out[i] = xs[i+1] - xs[i]
	}
	return out
}

// movingAverage is a same-length centred moving average: each output
// element averages the w-sample window around it, truncated at the
// edges (matching a "same" convolution with a uniform kernel).
func movingAverage(xs []float64, w int) []float64 {
	if w < 1 {
		w = 1
	}
	out := make([]float64, len(xs))
	inv := 1 / float64(w)
	half := (w - 1) / 2
	for i := range out {
		lo := i + half - w + 1
		hi := i + half + 1
		if lo < 0 {
			lo = 0
		}
		if hi > len(xs) {
			hi = len(xs)
		}
		sum := 0.0
		for j := lo; j < hi; j++ {
			sum += xs[j]
		}
		out[i] = sum * inv
	}
	return out
}
