package wave

import "errors"

var (
	// ErrBadRate is returned for a sample rate below 1 Hz.
	ErrBadRate = errors.New("wave: sample rate must be positive")

	// ErrBadDuration is returned when seconds and rate round to an
	// empty trace.
	ErrBadDuration = errors.New("wave: trace shorter than one sample")

	// ErrBadBPM is returned for a non-positive beat frequency.
	ErrBadBPM = errors.New("wave: beat frequency must be positive")

	// ErrBadSigma is returned for a negative noise level.
	ErrBadSigma = errors.New("wave: negative noise sigma")
)

// Option adjusts trace synthesis.
type Option func(*config)

type config struct {
	sigma float64
	seed  int64
	trend float64
}

// WithNoise adds zero-mean gaussian noise of the given sigma, drawn
// from a source seeded with seed. The same (sigma, seed) pair yields
// the same noise on every run.
func WithNoise(sigma float64, seed int64) Option {
	return func(c *config) {
		c.sigma = sigma
		c.seed = seed
	}
}

// WithTrend tilts the baseline by the given amount per second, the way
// a drifting electrode would.
func WithTrend(perSecond float64) Option {
	return func(c *config) { c.trend = perSecond }
}
