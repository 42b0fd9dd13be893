package renderer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// WorkerPool renders tiles concurrently with at most numWorkers in flight.
// Cancellation is observed between tiles; a tile in progress runs to completion.
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	return &WorkerPool{numWorkers: max(1, numWorkers)}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run calls render once for every tile and waits for all of them. The first
// error returned by render or by the context stops further tiles from starting.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, render func(tile *Tile) error) error {
	eg, ctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(wp.numWorkers))

	for _, tile := range tiles {
		tile := tile
		if err := sem.Acquire(ctx, 1); err != nil {
			// Drain in-flight tiles before reporting
			if waitErr := eg.Wait(); waitErr != nil {
				return waitErr
			}
			return fmt.Errorf("while acquiring worker slot: %w", err)
		}

		eg.Go(func() error {
			defer sem.Release(1)
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := render(tile); err != nil {
				return fmt.Errorf("while rendering tile %d: %w", tile.ID, err)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("while waiting for tile workers: %w", err)
	}
	return nil
}
