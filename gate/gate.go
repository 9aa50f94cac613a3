package gate

import (
	"fmt"
	"time"
)

// DefaultInterval is the ModeInterval cadence used when WithInterval is
// not given.
const DefaultInterval = time.Second

// Gate is a stateful admission filter. See the package documentation for
// the two modes. The zero value is not usable; construct with New.
type Gate struct {
	mode     Mode
	interval time.Duration
	now      func() time.Time

	seen         bool
	lastVersions []uint64
	lastFire     time.Time
}

// New builds a Gate for the given mode.
func New(mode Mode, opts ...Option) (*Gate, error) {
	if mode != ModeUpdate && mode != ModeInterval {
		return nil, fmt.Errorf("%w: %d", ErrBadMode, mode)
	}
	g := &Gate{
		mode:     mode,
		interval: DefaultInterval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.interval <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrNonPositiveInterval, g.interval)
	}
	return g, nil
}

// Mode reports the admission policy the Gate was built with.
func (g *Gate) Mode() Mode { return g.mode }

// Admit reports whether the caller should run the guarded work on this
// tick. In ModeUpdate the versions argument carries the current version
// counters of the observed sources; in ModeInterval it is ignored.
//
// The first call always admits.
func (g *Gate) Admit(versions ...uint64) bool {
	if g.mode == ModeInterval {
		return g.admitInterval()
	}
	return g.admitUpdate(versions)
}

func (g *Gate) admitUpdate(versions []uint64) bool {
	if !g.seen {
		g.seen = true
		g.record(versions)
		return true
	}
	if len(versions) != len(g.lastVersions) {
		g.record(versions)
		return true
	}
	for i, v := range versions {
		if v != g.lastVersions[i] {
			g.record(versions)
			return true
		}
	}
	return false
}

func (g *Gate) record(versions []uint64) {
	g.lastVersions = append(g.lastVersions[:0], versions...)
}

// admitInterval fires when at least one interval elapsed since the last
// admission. The mark advances by exactly one interval per admission so
// the cadence does not drift with processing delay; it snaps to the
// present only when the caller is more than a full interval late.
func (g *Gate) admitInterval() bool {
	now := g.now()
	if now.Sub(g.lastFire) < g.interval {
		return false
	}
	g.lastFire = g.lastFire.Add(g.interval)
	if now.Sub(g.lastFire) > g.interval {
		g.lastFire = now
	}
	return true
}
