package mapper

import (
	"fmt"
	"math"
	"sync"
)

// Nearest finds the element of xs closest to target and the signed
// distance target − nearest. Ties keep the earliest element. ok is false
// when xs is empty.
func Nearest(target float64, xs []float64) (nearest, dist float64, ok bool) {
	if len(xs) == 0 {
		return 0, 0, false
	}
	nearest = xs[0]
	best := math.Abs(target - xs[0])
	for _, x := range xs[1:] {
		if d := math.Abs(target - x); d < best {
			best = d
			nearest = x
		}
	}
	return nearest, target - nearest, true
}

// IndexCross is the canonical trigger function: it tracks the signed
// distance from a reference index to the nearest query element and fires
// once when that distance moves from non-positive to positive across
// successive polls — a query value sweeping past the reference point,
// such as a detected heartbeat streaming through the centre of a rolling
// window.
//
// The reference index auto-follows the reference source's CentreIndex()
// when it has one, else the query's midpoint; SetIndex pins it instead.
type IndexCross struct {
	mu       sync.Mutex
	index    int
	pinned   bool
	prev     float64
	prevSeen bool
}

// NewIndexCross builds a crossing trigger with an auto-resolved index.
func NewIndexCross() *IndexCross { return &IndexCross{} }

// NewIndexCrossAt builds a crossing trigger pinned to a fixed index.
func NewIndexCrossAt(index int) *IndexCross {
	return &IndexCross{index: index, pinned: true}
}

// SetIndex pins the reference index and forgets the previous distance, so
// the next poll counts as a first observation.
func (c *IndexCross) SetIndex(index int) {
	c.mu.Lock()
	c.index = index
	c.pinned = true
	c.prev, c.prevSeen = 0, false
	c.mu.Unlock()
}

// Fn is the TriggerFunc. It expects the poll Pair and yields a bool.
// Empty reference or query means not triggered and leaves the crossing
// history untouched. Otherwise the distance is recorded every poll, and
// the trigger fires exactly once per non-positive-to-positive transition:
// a second observation at the same distance, or a sweep that keeps
// retreating, stays quiet.
func (c *IndexCross) Fn(v any) (any, error) {
	pair, ok := v.(Pair)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrPairExpected, v)
	}
	if pair.Ref == nil || pair.Ref.Len() == 0 || len(pair.Query) == 0 {
		return false, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	index := c.index
	if !c.pinned {
		if cen, ok := pair.Ref.(interface{ CentreIndex() int }); ok {
			index = cen.CentreIndex()
		} else {
			index = len(pair.Query) / 2
		}
	}

	_, dist, _ := Nearest(float64(index), pair.Query)
	fired := c.prevSeen && c.prev <= 0 && dist > 0
	c.prev, c.prevSeen = dist, true
	return fired, nil
}
