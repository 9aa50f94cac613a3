package feature

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/katalvlaran/heartlight/fifo"
	"github.com/katalvlaran/heartlight/gate"
	"github.com/katalvlaran/heartlight/pipeline"
)

// fullness is the optional warm-up capability: sources that report
// fullness are skipped by Recompute until they fill.
type fullness interface {
	Full() bool
}

// Aggregator reduces a set of independent sample sources into one spatial
// feature vector, one slot per channel, and fans that vector out into
// named expansions. It is safe for one writer goroutine (the reduction
// loop) and any number of readers.
type Aggregator struct {
	mu         sync.RWMutex
	channels   []Channel
	slots      map[string]int
	vector     []float64
	expansions map[string]pipeline.Value
	updated    bool
	version    uint64
}

// New builds an Aggregator over the given channels. Slots default to
// insertion order; WithPosition overrides individual slots. Every channel
// needs a non-nil source and a unique name.
func New(channels []Channel, opts ...Option) (*Aggregator, error) {
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}

	slots := make(map[string]int, len(channels))
	for i, ch := range channels {
		if ch.Source == nil {
			return nil, fmt.Errorf("%w: channel %q", ErrNilSource, ch.Name)
		}
		if _, dup := slots[ch.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateChannel, ch.Name)
		}
		slots[ch.Name] = i
	}

	cfg := config{positions: make(map[string]int)}
	for _, opt := range opts {
		opt(&cfg)
	}
	for name, slot := range cfg.positions {
		if _, known := slots[name]; !known {
			return nil, fmt.Errorf("%w: position for unknown channel %q", ErrOptionViolation, name)
		}
		if slot < 0 || slot >= len(channels) {
			return nil, fmt.Errorf("%w: channel %q slot %d out of range [0,%d)",
				ErrOptionViolation, name, slot, len(channels))
		}
		slots[name] = slot
	}
	taken := make(map[int]string, len(slots))
	for name, slot := range slots {
		if other, clash := taken[slot]; clash {
			a, b := name, other
			if a > b {
				a, b = b, a
			}
			return nil, fmt.Errorf("%w: channels %q and %q share slot %d",
				ErrOptionViolation, a, b, slot)
		}
		taken[slot] = name
	}

	return &Aggregator{
		channels:   append([]Channel(nil), channels...),
		slots:      slots,
		vector:     make([]float64, len(channels)),
		expansions: make(map[string]pipeline.Value),
	}, nil
}

// Size reports the feature vector's length.
func (a *Aggregator) Size() int {
	return len(a.channels)
}

// Names lists the channel names in slot order.
func (a *Aggregator) Names() []string {
	names := make([]string, len(a.channels))
	for name, slot := range a.slots {
		names[slot] = name
	}
	return names
}

// Vector returns a copy of the current feature vector.
func (a *Aggregator) Vector() []float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return append([]float64(nil), a.vector...)
}

// Values returns the slots of the named channels, in argument order.
// Unknown names are skipped, so the result may be shorter than the
// request.
func (a *Aggregator) Values(names ...string) []float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]float64, 0, len(names))
	for _, name := range names {
		if slot, ok := a.slots[name]; ok {
			out = append(out, a.vector[slot])
		}
	}
	return out
}

// Updated reports whether the most recent RecomputeGated call fired.
// The flag is transient: a later non-firing tick clears it. Consumers
// that must never miss a change should watch Version instead.
func (a *Aggregator) Updated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.updated
}

// Version counts the recomputes that have landed. It strictly increases
// on every successful Recompute or fired RecomputeGated, so it feeds
// update-mode gates the same way a buffer version does.
func (a *Aggregator) Version() uint64 {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.version
}

// Recompute runs the reduction chain over every full channel source and
// writes each scalar result into the channel's slot. Sources still
// warming up are skipped and their slots keep the previous value. A chain
// result that is not a scalar after a single one-element unwrap is a
// configuration error.
func (a *Aggregator) Recompute(chain pipeline.Chain) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.recomputeLocked(chain)
}

func (a *Aggregator) recomputeLocked(chain pipeline.Chain) error {
	for _, ch := range a.channels {
		if f, ok := ch.Source.(fullness); ok && !f.Full() {
			continue
		}
		out, err := pipeline.Apply(ch.Source, chain)
		if err != nil {
			return fmt.Errorf("feature: channel %q: %w", ch.Name, err)
		}
		scalar, ok := toScalar(out)
		if !ok {
			return fmt.Errorf("%w: channel %q produced %s", ErrNotScalar, ch.Name, out)
		}
		a.vector[a.slots[ch.Name]] = scalar
	}
	a.version++
	return nil
}

// toScalar collapses a chain result to one number. A one-element vector
// or one-member tuple is unwrapped exactly once; anything still
// non-scalar after that fails.
func toScalar(v pipeline.Value) (float64, bool) {
	if f, ok := v.Float(); ok {
		return f, true
	}
	if xs, ok := v.Floats(); ok && len(xs) == 1 {
		return xs[0], true
	}
	if ms, ok := v.Members(); ok && len(ms) == 1 {
		if f, ok := ms[0].Float(); ok {
			return f, true
		}
	}
	return 0, false
}

// RecomputeGated recomputes only when the gate admits the tick and
// reports whether it did. In update mode the gate compares the channel
// sources' version vector, taken before the recompute, so writes landing
// mid-recompute fire the next tick. A channel whose source does not
// report versions makes every tick fire. In interval mode versions are
// ignored and wall-clock cadence decides.
func (a *Aggregator) RecomputeGated(chain pipeline.Chain, g *gate.Gate) (bool, error) {
	if g == nil {
		return false, ErrNilGate
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	var fired bool
	if g.Mode() == gate.ModeUpdate {
		versions, allVersioned := a.versionsLocked()
		if allVersioned {
			fired = g.Admit(versions...)
		} else {
			fired = true
		}
	} else {
		fired = g.Admit()
	}
	if !fired {
		a.updated = false
		return false, nil
	}
	if err := a.recomputeLocked(chain); err != nil {
		a.updated = false
		return false, err
	}
	a.updated = true
	return true, nil
}

// versionsLocked snapshots every channel source's version, in channel
// order. The second result is false when any source lacks versioning.
func (a *Aggregator) versionsLocked() ([]uint64, bool) {
	versions := make([]uint64, 0, len(a.channels))
	for _, ch := range a.channels {
		vs, ok := ch.Source.(fifo.Versioned)
		if !ok {
			return nil, false
		}
		versions = append(versions, vs.Version())
	}
	return versions, true
}

// SpatialExpansion runs a chain over a copy of the current feature vector
// and stores the result under name, replacing any previous result with
// that name. An empty name files the result under the registry's current
// size in decimal, which appends a fresh entry on every call; expansions
// recomputed per tick should be named.
func (a *Aggregator) SpatialExpansion(chain pipeline.Chain, name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	out, err := pipeline.ApplyValue(pipeline.Vector(a.vector), chain)
	if err != nil {
		return fmt.Errorf("feature: expansion %q: %w", name, err)
	}
	if name == "" {
		name = strconv.Itoa(len(a.expansions))
	}
	a.expansions[name] = out
	return nil
}

// Expansion returns a deep copy of the named expansion result.
func (a *Aggregator) Expansion(name string) (pipeline.Value, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out, ok := a.expansions[name]
	if !ok {
		return pipeline.Value{}, fmt.Errorf("%w: %q", ErrUnknownExpansion, name)
	}
	return out.Clone(), nil
}

// Expansions lists the stored expansion names, sorted.
func (a *Aggregator) Expansions() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	names := make([]string, 0, len(a.expansions))
	for name := range a.expansions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
