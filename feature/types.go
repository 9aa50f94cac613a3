// Package feature: shared sentinel errors and option plumbing.
package feature

import (
	"errors"

	"github.com/katalvlaran/heartlight/fifo"
)

// Sentinel errors returned by the feature package. All are wrapped with
// contextual detail; match with errors.Is.
var (
	// ErrNoChannels is returned by New when the channel list is empty.
	ErrNoChannels = errors.New("feature: at least one channel required")

	// ErrNilSource is returned by New when a channel carries a nil source.
	ErrNilSource = errors.New("feature: nil channel source")

	// ErrDuplicateChannel is returned by New when two channels share a name.
	ErrDuplicateChannel = errors.New("feature: duplicate channel name")

	// ErrOptionViolation is returned by New when a functional option is
	// inconsistent with the channel list (unknown name, slot out of range,
	// two channels assigned the same slot).
	ErrOptionViolation = errors.New("feature: option violation")

	// ErrNilGate is returned by RecomputeGated when no gate is supplied.
	ErrNilGate = errors.New("feature: nil gate")

	// ErrNotScalar is returned by Recompute when a channel's reduction
	// chain does not collapse to a single number.
	ErrNotScalar = errors.New("feature: reduction did not produce a scalar")

	// ErrUnknownExpansion is returned by Expansion for names never
	// produced by SpatialExpansion.
	ErrUnknownExpansion = errors.New("feature: unknown expansion")
)

// Channel binds a name to the sample source reduced into that channel's
// slot of the feature vector.
type Channel struct {
	Name   string
	Source fifo.Source
}

// Option configures an Aggregator at construction time.
type Option func(*config)

type config struct {
	positions map[string]int
}

// WithPosition pins the named channel to an explicit slot in the feature
// vector, overriding its insertion-order default. Overrides that would
// leave two channels on the same slot make New fail; override both
// members of a swap.
func WithPosition(name string, slot int) Option {
	return func(c *config) {
		c.positions[name] = slot
	}
}
