package fifo

import "sync"

// Buffer is a fixed-capacity FIFO of float64 samples with a monotonic
// version counter. One producer goroutine mutates it; any number of
// consumer goroutines read it. All reads return copies and never change
// the version.
type Buffer struct {
	mu      sync.RWMutex
	data    []float64
	cap     int
	centre  int
	version uint64
}

// New returns an empty Buffer holding at most capacity samples.
// Returns ErrNegativeCapacity when capacity < 0.
func New(capacity int) (*Buffer, error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	return &Buffer{
		data:   make([]float64, 0, capacity),
		cap:    capacity,
		centre: capacity / 2,
	}, nil
}

// Enqueue appends each value in arrival order, evicting the oldest sample
// whenever the buffer is already at capacity. The version increases by one
// per appended scalar, not once per call.
func (b *Buffer) Enqueue(values ...float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, v := range values {
		if len(b.data) >= b.cap && len(b.data) > 0 {
			copy(b.data, b.data[1:])
			b.data = b.data[:len(b.data)-1]
		}
		b.data = append(b.data, v)
		b.version++
	}
}

// Replace clears the buffer and enqueues values wholesale. When resize is
// true the capacity becomes len(values) and the centre index is recomputed.
// Replacement is itself a mutation: the version strictly increases even for
// an empty values slice.
func (b *Buffer) Replace(values []float64, resize bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = b.data[:0]
	b.version++
	if resize {
		b.cap = len(values)
		if cap(b.data) < b.cap {
			b.data = make([]float64, 0, b.cap)
		}
	}
	for _, v := range values {
		if len(b.data) >= b.cap && len(b.data) > 0 {
			copy(b.data, b.data[1:])
			b.data = b.data[:len(b.data)-1]
		}
		b.data = append(b.data, v)
		b.version++
	}
	b.centre = b.cap / 2
	b.version++
}

// Clear empties the buffer. Clearing counts as a version-changing mutation
// so gated consumers observe it; capacity and centre index are unchanged.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = b.data[:0]
	b.version++
}

// Contents returns a copy of the current samples, oldest first.
func (b *Buffer) Contents() []float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]float64, len(b.data))
	copy(out, b.data)
	return out
}

// Len reports the number of samples currently held.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.data)
}

// Cap reports the maximum number of samples the buffer holds.
func (b *Buffer) Cap() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cap
}

// Full reports whether the buffer has reached capacity. Aggregators use
// this as the warm-up check: channels that are not yet full are skipped.
func (b *Buffer) Full() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.data) >= b.cap
}

// Version returns the mutation counter. It strictly increases on every
// Enqueue'd scalar, on Replace and on Clear; reads never change it.
func (b *Buffer) Version() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

// CentreIndex returns ⌊capacity/2⌋, recomputed whenever the capacity
// changes. Centre-relative triggers use it as their reference point.
func (b *Buffer) CentreIndex() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.centre
}
