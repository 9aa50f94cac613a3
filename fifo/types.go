package fifo

import "errors"

// Sentinel errors for buffer construction and mutation.
var (
	// ErrNegativeCapacity is returned when a buffer is created or resized
	// with a capacity below zero.
	ErrNegativeCapacity = errors.New("fifo: capacity must be at least 0")
)

// Source is the minimal read capability shared by buffers and raw slices.
// Pipelines and mappers consume Sources so they never care whether the
// data lives in a *Buffer or a plain []float64.
type Source interface {
	// Contents returns the current samples, oldest first.
	// Implementations owned by a live producer must return a copy.
	Contents() []float64
	// Len reports the number of samples currently held.
	Len() int
}

// Versioned is the optional staleness capability. Sources that implement
// it participate in version-based change gating; sources that do not are
// treated as always-changed by gated consumers.
type Versioned interface {
	Source
	// Version returns a counter that strictly increases on every mutation.
	Version() uint64
}

// Slice adapts a raw []float64 to Source. It carries no version and no
// capacity, so gated consumers treat it as always changed and aggregators
// reduce it unconditionally. The caller owns the backing array; mutating
// it concurrently with readers is the caller's responsibility.
type Slice []float64

// Contents returns the slice itself, oldest first.
func (s Slice) Contents() []float64 { return s }

// Len reports the number of samples in the slice.
func (s Slice) Len() int { return len(s) }
