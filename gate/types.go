package gate

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrBadMode is returned for a Mode value outside the defined set or
	// an unrecognised mode name.
	ErrBadMode = errors.New("gate: unknown mode")
	// ErrNonPositiveInterval is returned when the interval option is zero
	// or negative.
	ErrNonPositiveInterval = errors.New("gate: interval must be positive")
)

// Mode selects the admission policy of a Gate.
type Mode uint8

const (
	// ModeUpdate admits a tick when any observed version changed.
	ModeUpdate Mode = iota
	// ModeInterval admits ticks on a fixed wall-clock cadence.
	ModeInterval
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeUpdate:
		return "update"
	case ModeInterval:
		return "time"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode maps a configuration string to a Mode. Accepted names are
// "update" and "time".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "update":
		return ModeUpdate, nil
	case "time":
		return ModeInterval, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadMode, s)
	}
}

// Option adjusts a Gate at construction time.
type Option func(*Gate)

// WithInterval sets the cadence used by ModeInterval. It is ignored by
// ModeUpdate. New rejects non-positive values.
func WithInterval(d time.Duration) Option {
	return func(g *Gate) { g.interval = d }
}

// WithClock replaces the wall-clock source. Tests use this to drive the
// cadence deterministically.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) { g.now = now }
}
