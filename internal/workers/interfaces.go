// Package workers provides the background and startup jobs of the vault and
// the bounded pool Argon2id derivations run in.
//
// It defines the Worker interface and a Workers aggregate that runs several
// workers as one.
package workers

import "context"

// Worker is the interface that must be implemented by any startup or
// background job.
//
// Implementations block until their work is done or ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    // do the work
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts an ordinary function to the [Worker] interface.
type WorkerFunc func(ctx context.Context) error

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
