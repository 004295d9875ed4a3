package go_nano

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"
)

// errWorkFound stops sibling workers once a nonce is found.
var errWorkFound = errors.New("nano: work found")

// WorkComputer searches for work with several goroutines, each scanning
// its own partition of the nonce space.
type WorkComputer struct {
	Threshold uint64
	Workers   uint64
	Metrics   WorkMetrics
}

// NewWorkComputer returns a computer using the threshold and worker count
// from config.
func NewWorkComputer(config *Config) *WorkComputer {
	return &WorkComputer{
		Threshold: config.WorkThreshold(),
		Workers:   config.WorkWorkers(),
	}
}

// ComputeWork searches for work for blockHash with workers goroutines.
func ComputeWork(ctx context.Context, blockHash BlockHash, threshold, workers uint64) (Work, error) {
	wc := &WorkComputer{Threshold: threshold, Workers: workers}
	return wc.Compute(ctx, blockHash)
}

// Compute runs every partition concurrently and returns the first nonce
// found. The remaining workers are cancelled. Workers must be in
// [1, MAX_WORK_WORKERS]. It returns ErrWorkNotFound if all partitions are
// exhausted, or the context error if ctx ends first.
func (wc *WorkComputer) Compute(ctx context.Context, blockHash BlockHash) (Work, error) {
	if wc.Workers == 0 || wc.Workers > MAX_WORK_WORKERS {
		return Work{}, NewWorkError(0, wc.Workers, ErrInvalidWorkerParameters)
	}

	start := time.Now()
	result := make(chan uint64, 1)
	g, gctx := errgroup.WithContext(ctx)

	for i := uint64(0); i < wc.Workers; i++ {
		workerIndex := i
		g.Go(func() error {
			lower, upper, err := WorkRange(workerIndex, wc.Workers)
			if err != nil {
				return err
			}
			nonce, found, err := scanWorkRange(gctx, blockHash, wc.Threshold, lower, upper, wc.Metrics)
			if err != nil {
				return err
			}
			if !found {
				return nil
			}
			select {
			case result <- nonce:
			default:
			}
			return errWorkFound
		})
	}

	err := g.Wait()
	select {
	case nonce := <-result:
		work := WorkFromUint64(nonce)
		Debug("Computed work %s for %s with %d workers in %s", work, blockHash, wc.Workers, time.Since(start))
		return work, nil
	default:
	}

	if err != nil && !errors.Is(err, errWorkFound) {
		return Work{}, err
	}
	Warning("Work search for %s exhausted all %d partitions", blockHash, wc.Workers)
	return Work{}, ErrWorkNotFound
}
