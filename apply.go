package matgo

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/matgo/storage"
)

// ParallelColumns runs fn once per column, spreading the columns over up to
// GOMAXPROCS goroutines. Columns are contiguous in memory, so per-column
// work parallelizes without false sharing between workers.
//
// fn receives the column index and the column's backing slice; writes through
// the slice are visible in the matrix. The first error cancels the remaining
// work and is returned.
func ParallelColumns[T storage.Scalar](ctx context.Context, m *Matrix[T], fn func(j int, col []T) error) error {
	return parallelColumns(ctx, m, runtime.GOMAXPROCS(0), fn)
}

// ParallelColumnsN is ParallelColumns with an explicit worker limit.
// limit <= 0 means no limit.
func ParallelColumnsN[T storage.Scalar](ctx context.Context, m *Matrix[T], limit int, fn func(j int, col []T) error) error {
	return parallelColumns(ctx, m, limit, fn)
}

func parallelColumns[T storage.Scalar](ctx context.Context, m *Matrix[T], limit int, fn func(j int, col []T) error) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for j := 0; j < m.Cols(); j++ {
		j := j
		col := m.Col(j)
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return fn(j, col)
		})
	}

	return g.Wait()
}
