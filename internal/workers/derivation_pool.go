package workers

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// DerivationPool bounds how many memory-hard key derivations run at the same
// time. Every Argon2id call holds 64 MiB, so an unbounded burst of requests
// would exhaust memory long before the CPU.
type DerivationPool struct {
	sem  *semaphore.Weighted
	size int64
}

// NewDerivationPool returns a pool admitting size concurrent jobs. A size
// below one admits one.
func NewDerivationPool(size int) *DerivationPool {
	if size < 1 {
		size = 1
	}
	return &DerivationPool{
		sem:  semaphore.NewWeighted(int64(size)),
		size: int64(size),
	}
}

// Do waits for a free slot and runs fn in the calling goroutine. ctx only
// bounds the wait: once fn has started it runs to completion, so a cancelled
// caller never leaves a half-derived key behind.
func (p *DerivationPool) Do(ctx context.Context, fn func() error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer p.sem.Release(1)

	return fn()
}

// Size returns the number of concurrent jobs the pool admits.
func (p *DerivationPool) Size() int {
	return int(p.size)
}
