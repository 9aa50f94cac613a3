package wave

import (
	"fmt"
	"math"
	"math/rand"
)

// One cardiac cycle as a sum of gaussian bumps, R wave normalised to 1.
// Centres and widths are fractions of the beat period.
var beatShape = [...]struct{ amp, centre, width float64 }{
	{0.08, 0.18, 0.03},   // P
	{-0.12, 0.30, 0.01},  // Q
	{1.00, 0.32, 0.008},  // R
	{-0.25, 0.35, 0.012}, // S
	{0.25, 0.60, 0.06},   // T
}

// Beat samples one idealised PQRST cycle at the given phase. The phase
// is wrapped into [0,1), so a running accumulator can be passed as is.
func Beat(phase float64) float64 {
	phase -= math.Floor(phase)
	v := 0.0
	for _, w := range beatShape {
		d := phase - w.centre
		v += w.amp * math.Exp(-d*d/(2*w.width*w.width))
	}
	return v
}

// Heartbeat synthesizes seconds worth of an idealised ECG trace at the
// given sample rate and steady beat frequency. The result is fully
// determined by the arguments; noise added through WithNoise is drawn
// from its own seeded source, so traces stay reproducible.
func Heartbeat(seconds float64, rate int, bpm float64, opts ...Option) ([]float64, error) {
	if rate < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadRate, rate)
	}
	n := int(math.Round(seconds * float64(rate)))
	if n < 1 {
		return nil, fmt.Errorf("%w: %gs at %d Hz", ErrBadDuration, seconds, rate)
	}
	if bpm <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadBPM, bpm)
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sigma < 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadSigma, cfg.sigma)
	}

	var rng *rand.Rand
	if cfg.sigma > 0 {
		rng = rand.New(rand.NewSource(cfg.seed))
	}
	perSample := bpm / 60 / float64(rate)
	xs := make([]float64, n)
	phase := 0.0
	for i := range xs {
		xs[i] = Beat(phase) + cfg.trend*float64(i)/float64(rate)
		if rng != nil {
			xs[i] += rng.NormFloat64() * cfg.sigma
		}
		phase += perSample
	}
	return xs, nil
}

// Template samples one cycle across n points with the R wave dead
// centre, the reference shape for beat matching. Returns ErrBadDuration
// when n < 1.
func Template(n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d points", ErrBadDuration, n)
	}
	r := beatShape[2].centre
	out := make([]float64, n)
	for i := range out {
		out[i] = Beat(r + float64(i-n/2)/float64(n))
	}
	return out, nil
}
