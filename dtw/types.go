package dtw

import "errors"

var (
	// ErrEmpty is returned when either sequence has no samples.
	ErrEmpty = errors.New("dtw: sequences must be non-empty")

	// ErrBadWindow is returned for a WithWindow radius below 1.
	ErrBadWindow = errors.New("dtw: window radius must be positive")

	// ErrBadPenalty is returned for a negative slope penalty.
	ErrBadPenalty = errors.New("dtw: negative slope penalty")

	// ErrBadThreshold is returned by Match and Confirm for a negative
	// distance threshold.
	ErrBadThreshold = errors.New("dtw: negative match threshold")

	// ErrNotCrossing is returned by a Confirm link that received
	// something other than the upstream crossing bool.
	ErrNotCrossing = errors.New("dtw: confirm expects the upstream crossing result")

	// ErrNilReference is returned by Confirm for a nil reference source.
	ErrNilReference = errors.New("dtw: nil reference source")
)

// Option adjusts the warp computation.
type Option func(*config)

type config struct {
	window    int
	hasWindow bool
	penalty   float64
}

// WithWindow constrains the alignment to a Sakoe–Chiba band: sample i
// of one window may only align with samples j where |i−j| ≤ radius.
// A tight band keeps warps local and trims the quadratic work. The
// radius is widened to the length difference of the two windows when
// necessary, so an alignment always exists. Without this option the
// alignment is unconstrained.
func WithWindow(radius int) Option {
	return func(c *config) { c.window, c.hasWindow = radius, true }
}

// WithSlopePenalty adds a fixed cost to every insert and delete step of
// the alignment, biasing it toward lockstep matching. Zero, the
// default, lets the warp stretch freely.
func WithSlopePenalty(p float64) Option {
	return func(c *config) { c.penalty = p }
}
