package mapper

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/heartlight/feature"
	"github.com/katalvlaran/heartlight/fixture"
	"github.com/katalvlaran/heartlight/pipeline"
)

// Continuous maps the aggregator's feature vector (or one of its named
// expansions) onto a fixture array's channels through a hot-swappable
// function chain. One mapping task writes per channel set; SetFunctions
// may be called from anywhere.
type Continuous struct {
	agg *feature.Aggregator
	fix *fixture.Array

	mu    sync.RWMutex
	chain pipeline.Chain
}

// NewContinuous binds an aggregator to a fixture array. The chain may be
// empty: mapping then writes the input unchanged (sanitized).
func NewContinuous(agg *feature.Aggregator, fix *fixture.Array, chain pipeline.Chain) (*Continuous, error) {
	if agg == nil {
		return nil, ErrNilAggregator
	}
	if fix == nil {
		return nil, ErrNilFixtures
	}
	return &Continuous{agg: agg, fix: fix, chain: chain}, nil
}

// SetFunctions replaces the mapping chain. In-flight ApplyMapping calls
// finish with the chain they started with; the swap is last-writer-wins.
func (m *Continuous) SetFunctions(chain pipeline.Chain) {
	m.mu.Lock()
	m.chain = chain
	m.mu.Unlock()
}

// ApplyMapping reads the named expansion (or the raw feature vector when
// expansion is empty), runs it through the chain with tuple fanout, and
// writes the result to the fixture array's channel set. Single-channel
// sets demand one bare vector of Size() values; RGB and RGBW demand a
// tuple of three or four such vectors.
func (m *Continuous) ApplyMapping(set fixture.ChannelSet, expansion string) error {
	if set.Count() == 0 {
		return fmt.Errorf("%w: %s", fixture.ErrChannelSet, set)
	}

	var in pipeline.Value
	if expansion == "" {
		in = pipeline.Vector(m.agg.Vector())
	} else {
		v, err := m.agg.Expansion(expansion)
		if err != nil {
			return err
		}
		in = v
	}

	m.mu.RLock()
	chain := m.chain
	m.mu.RUnlock()

	out, err := pipeline.ApplyValue(in, chain, pipeline.WithFanout())
	if err != nil {
		return fmt.Errorf("mapper: %s mapping: %w", set, err)
	}

	rows, err := m.rows(set, out)
	if err != nil {
		return err
	}
	return m.fix.Apply(set, rows)
}

// rows validates the chain result against the channel set and unpacks it
// into per-channel arrays. A tuple is rejected for single-channel sets
// even when it has exactly one member.
func (m *Continuous) rows(set fixture.ChannelSet, out pipeline.Value) ([][]float64, error) {
	n := m.fix.Size()
	want := set.Count()

	if want == 1 {
		xs, ok := out.Floats()
		if !ok || len(xs) != n {
			return nil, fmt.Errorf("%w: set %s wants one vector of %d, got %s",
				ErrShapeMismatch, set, n, out)
		}
		return [][]float64{xs}, nil
	}

	members, ok := out.Members()
	if !ok || len(members) != want {
		return nil, fmt.Errorf("%w: set %s wants a tuple of %d vectors, got %s",
			ErrShapeMismatch, set, want, out)
	}
	rows := make([][]float64, want)
	for i, member := range members {
		xs, ok := member.Floats()
		if !ok || len(xs) != n {
			return nil, fmt.Errorf("%w: set %s channel %d wants a vector of %d, got %s",
				ErrShapeMismatch, set, i, n, member)
		}
		rows[i] = xs
	}
	return rows, nil
}
