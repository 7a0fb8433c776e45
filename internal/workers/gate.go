package workers

import "sync/atomic"

// Gate is the switch cryptographic work waits behind. It starts closed and
// is opened by a passing encryption self-test.
type Gate struct {
	open atomic.Bool
}

// NewGate returns a closed gate.
func NewGate() *Gate {
	return &Gate{}
}

// Open opens the gate and reports whether it was closed before.
func (g *Gate) Open() bool {
	return !g.open.Swap(true)
}

// Close closes the gate.
func (g *Gate) Close() {
	g.open.Store(false)
}

// Ready reports whether the gate is open.
func (g *Gate) Ready() bool {
	return g.open.Load()
}
