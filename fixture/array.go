package fixture

import (
	"fmt"
	"sync"
)

// Array holds the channel state of an ordered group of lighting fixtures:
// one intensity and four colour values per fixture, plus the previous
// value of every channel for ramped transitions. Mappers write whole
// channel blocks through Apply; senders read Current and Previous.
type Array struct {
	mu      sync.RWMutex
	ids     []int
	anchors []int // positions of the anchor fixtures within ids
	current [numChannels][]float64
	prev    [numChannels][]float64
}

// New builds an Array for the given fixture ids. anchors names the
// fixtures that act as spatial reference points for trigger effects;
// anchor ids not present in ids are dropped. All channels start at zero.
func New(ids []int, anchors []int) (*Array, error) {
	if len(ids) == 0 {
		return nil, ErrNoFixtures
	}

	anchorSet := make(map[int]struct{}, len(anchors))
	for _, id := range anchors {
		anchorSet[id] = struct{}{}
	}
	var positions []int
	for i, id := range ids {
		if _, ok := anchorSet[id]; ok {
			positions = append(positions, i)
		}
	}

	a := &Array{
		ids:     append([]int(nil), ids...),
		anchors: positions,
	}
	for ch := 0; ch < numChannels; ch++ {
		a.current[ch] = make([]float64, len(ids))
		a.prev[ch] = make([]float64, len(ids))
	}
	return a, nil
}

// Size reports the number of fixtures.
func (a *Array) Size() int {
	return len(a.ids)
}

// IDs returns a copy of the fixture ids, in array order.
func (a *Array) IDs() []int {
	return append([]int(nil), a.ids...)
}

// AnchorPositions returns the positions of the anchor fixtures within the
// array, in array order.
func (a *Array) AnchorPositions() []int {
	return append([]int(nil), a.anchors...)
}

// Apply overwrites the set's channels with the given arrays, retaining
// the overwritten values as the previous state. channels must hold
// exactly set.Count() arrays of Size() values each; on any mismatch the
// state is left untouched. The swap is atomic: readers never observe a
// half-applied set.
func (a *Array) Apply(set ChannelSet, channels [][]float64) error {
	targets := set.channels()
	if targets == nil {
		return fmt.Errorf("%w: %s", ErrChannelSet, set)
	}
	if len(channels) != len(targets) {
		return fmt.Errorf("%w: set %s wants %d channel arrays, got %d",
			ErrShapeMismatch, set, len(targets), len(channels))
	}
	for i, values := range channels {
		if len(values) != len(a.ids) {
			return fmt.Errorf("%w: channel %d has %d values, want %d fixtures",
				ErrShapeMismatch, i, len(values), len(a.ids))
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for i, ch := range targets {
		a.prev[ch], a.current[ch] = a.current[ch], a.prev[ch]
		copy(a.current[ch], channels[i])
	}
	return nil
}

// Current returns copies of the set's channel arrays as last applied.
func (a *Array) Current(set ChannelSet) ([][]float64, error) {
	return a.snapshot(set, &a.current)
}

// Previous returns copies of the set's channel arrays as they were before
// the most recent Apply touching them.
func (a *Array) Previous(set ChannelSet) ([][]float64, error) {
	return a.snapshot(set, &a.prev)
}

func (a *Array) snapshot(set ChannelSet, state *[numChannels][]float64) ([][]float64, error) {
	targets := set.channels()
	if targets == nil {
		return nil, fmt.Errorf("%w: %s", ErrChannelSet, set)
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([][]float64, len(targets))
	for i, ch := range targets {
		out[i] = append([]float64(nil), state[ch]...)
	}
	return out, nil
}
