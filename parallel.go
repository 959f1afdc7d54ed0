package kspace

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// ParallelShiftFuncEachND is ShiftFuncEachND with the callbacks run
// concurrently, at most WithWorkers of them at a time.
//
// No element's shift depends on another's, so the callbacks may run in any
// order; fn must be safe for concurrent use. Results are still returned in
// element order. The first error returned by fn cancels the context passed
// to the remaining work and is returned. An arity mismatch is reported
// before any callback runs.
func ParallelShiftFuncEachND[R any](
	ctx context.Context,
	s CellsND,
	fn func(ctx context.Context, level int, index []int) (R, error),
	level int,
	index []int,
	opts ...ParallelOption,
) ([]R, error) {
	if err := s.checkArity(len(index)); err != nil {
		return nil, err
	}

	o := defaultParallelOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := Logger()
	log.Debug("kspace: parallel shift", slog.Int("cells", s.Size()), slog.Int("workers", o.workers))

	results := make([]R, s.Size())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i, c := range s.items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			shifted, _ := c.Shift(index...)
			r, err := fn(gctx, level+c.LevelShift(), shifted)
			if err != nil {
				return fmt.Errorf("kspace: shift of %s: %w", c, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Warn("kspace: parallel shift interrupted", slog.Any("err", err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		// Cancelled before any goroutine observed it.
		return nil, err
	}
	log.Debug("kspace: parallel shift done", slog.Int("cells", s.Size()))
	return results, nil
}
