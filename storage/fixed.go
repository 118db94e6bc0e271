package storage

import (
	"github.com/hupe1980/matgo/internal/debug"
	"github.com/hupe1980/matgo/internal/mem"
)

// Fixed is fully fixed-size storage: both dimensions are set at construction
// and one inline buffer of rows*cols elements backs the instance for its
// whole lifetime. Resize is a no-op by contract.
type Fixed[T Scalar] struct {
	data []T
	rows int
	cols int
	spec Spec
}

func newFixed[T Scalar](rows, cols int, opts Options, checkAlignment bool) *Fixed[T] {
	size := rows * cols
	f := &Fixed[T]{
		data: allocFixed[T](size, opts),
		rows: rows,
		cols: cols,
	}
	if checkAlignment {
		assertBufferAligned(f.data, size, opts)
	}
	return f
}

// Rows returns the fixed row count.
func (s *Fixed[T]) Rows() int { return s.rows }

// Cols returns the fixed column count.
func (s *Fixed[T]) Cols() int { return s.cols }

// Resize is a no-op. The caller must pass dimensions consistent with the
// fixed shape; debug builds assert this.
func (s *Fixed[T]) Resize(size, rows, cols int) {
	debug.Assertf(size == len(s.data) && rows == s.rows && cols == s.cols,
		"resize of fixed %dx%d storage to %dx%d (size %d)", s.rows, s.cols, rows, cols, size)
}

// Swap exchanges buffer contents with other, which must be a *Fixed of the
// same dimensions. O(size).
func (s *Fixed[T]) Swap(other Storage[T]) {
	o := other.(*Fixed[T])
	debug.Assertf(len(s.data) == len(o.data),
		"swap of fixed storage with mismatched sizes %d and %d", len(s.data), len(o.data))
	for i := range s.data {
		s.data[i], o.data[i] = o.data[i], s.data[i]
	}
}

// Data returns the inline buffer.
func (s *Fixed[T]) Data() []T { return s.data }

// Spec returns the shape declaration the storage was built from.
func (s *Fixed[T]) Spec() Spec { return s.spec }

// Null is the zero-size shape: no backing buffer, nil data.
type Null[T Scalar] struct {
	rows int
	cols int
	spec Spec
}

func newNull[T Scalar](rows, cols int) *Null[T] {
	// A Dynamic dimension of a zero-size storage reads back as zero.
	return &Null[T]{rows: max(rows, 0), cols: max(cols, 0)}
}

// Rows returns the fixed row count (zero for a Dynamic dimension).
func (s *Null[T]) Rows() int { return s.rows }

// Cols returns the fixed column count (zero for a Dynamic dimension).
func (s *Null[T]) Cols() int { return s.cols }

// Resize is a no-op.
func (s *Null[T]) Resize(int, int, int) {}

// Swap is a no-op.
func (s *Null[T]) Swap(Storage[T]) {}

// Data returns nil.
func (s *Null[T]) Data() []T { return nil }

// Spec returns the shape declaration the storage was built from.
func (s *Null[T]) Spec() Spec { return s.spec }

// assertBufferAligned asserts, in debug builds, that a buffer which qualifies
// for auto-alignment actually landed on a 16-byte boundary. A failure signals
// an allocator misconfiguration, not a recoverable error.
func assertBufferAligned[T Scalar](data []T, size int, opts Options) {
	if !debug.Enabled {
		return
	}
	if !opts.autoAlign() || size <= 0 || (size*mem.SizeOf[T]())%mem.Alignment != 0 {
		return
	}
	debug.Assertf(mem.IsAligned(data),
		"fixed-size buffer of %d elements is not %d-byte aligned; the allocator did not honor the alignment request", size, mem.Alignment)
}
