package workers

import (
	"context"
	"fmt"
)

// Workers runs a fixed list of workers in order.
type Workers struct {
	workers []Worker
}

// NewWorkers groups ws into one [Workers].
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run runs every worker in order and stops at the first failure.
func (w *Workers) Run(ctx context.Context) error {
	for i, worker := range w.workers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := worker.Run(ctx); err != nil {
			return fmt.Errorf("worker %d: %w", i, err)
		}
	}
	return nil
}
