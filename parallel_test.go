package kspace

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelShiftFuncEachND_MatchesSequential(t *testing.T) {
	stencil := MustMake(2, 3).Neighborhood(3)

	want, err := ShiftFuncEachND(stencil, func(level int, index []int) [3]int {
		return [3]int{level, index[0], index[1]}
	}, 2, 10, 20)
	require.NoError(t, err)

	for _, workers := range []int{1, 3, 16} {
		got, err := ParallelShiftFuncEachND(context.Background(), stencil,
			func(_ context.Context, level int, index []int) ([3]int, error) {
				return [3]int{level, index[0], index[1]}, nil
			}, 2, []int{10, 20}, WithWorkers(workers))
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestParallelShiftFuncEachND_WorkerLimit(t *testing.T) {
	stencil := MustMake(3, 7).Up(2)

	var running, peak atomic.Int32
	_, err := ParallelShiftFuncEachND(context.Background(), stencil,
		func(_ context.Context, _ int, _ []int) (struct{}, error) {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			running.Add(-1)
			return struct{}{}, nil
		}, 0, []int{0, 0, 0}, WithWorkers(2))
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestParallelShiftFuncEachND_Error(t *testing.T) {
	errBoundary := errors.New("outside the mesh")
	stencil := MustMake(1, 1).Neighborhood(4)

	_, err := ParallelShiftFuncEachND(context.Background(), stencil,
		func(_ context.Context, _ int, index []int) (int, error) {
			if index[0] < 0 {
				return 0, errBoundary
			}
			return index[0], nil
		}, 0, []int{1})
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoundary)
	assert.Contains(t, err.Error(), "kspace: shift of CellND{")
}

func TestParallelShiftFuncEachND_Arity(t *testing.T) {
	var calls atomic.Int32
	_, err := ParallelShiftFuncEachND(context.Background(), MustMake(2, 3).Up(1),
		func(context.Context, int, []int) (int, error) {
			calls.Add(1)
			return 0, nil
		}, 0, []int{1, 2, 3})
	assert.ErrorIs(t, err, ErrArityMismatch)
	assert.Zero(t, calls.Load(), "no callback runs on arity mismatch")
}

func TestParallelShiftFuncEachND_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParallelShiftFuncEachND(ctx, MustMake(2, 3).Up(1),
		func(context.Context, int, []int) (int, error) { return 0, nil },
		0, []int{0, 0})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParallelShiftFuncEachND_Empty(t *testing.T) {
	got, err := ParallelShiftFuncEachND(context.Background(), CellsND{},
		func(context.Context, int, []int) (int, error) { return 1, nil },
		0, []int{0, 0, 0})
	require.NoError(t, err)
	assert.Empty(t, got)
}
