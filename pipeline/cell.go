package pipeline

import "sync"

// Cell holds the chain a running mapper task should currently use and
// lets another goroutine swap it without restarting the task. Readers
// poll Load and compare the version against the last one they acted on;
// versions replace structural chain comparison, which Go cannot do over
// function values.
type Cell struct {
	mu      sync.RWMutex
	chain   Chain
	version uint64
}

// NewCell builds a cell holding the initial chain at version 1.
func NewCell(chain Chain) *Cell {
	c := &Cell{}
	c.Store(chain)
	return c
}

// Store replaces the chain and bumps the version. The chain is copied.
func (c *Cell) Store(chain Chain) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chain = append(Chain(nil), chain...)
	c.version++
}

// Load snapshots the current chain and its version. The returned chain
// is a copy; mutating it does not affect the cell.
func (c *Cell) Load() (Chain, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append(Chain(nil), c.chain...), c.version
}

// Version reports the current version without copying the chain.
func (c *Cell) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}
