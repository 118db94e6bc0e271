package storage

import (
	"github.com/hupe1980/matgo/internal/debug"
)

// Inline is dynamic-rows, dynamic-cols storage bounded by a fixed capacity
// buffer. Resize updates the counters only and never reallocates; sizing
// beyond capacity is a contract violation (asserted in debug builds,
// unchecked otherwise).
type Inline[T Scalar] struct {
	data []T
	rows int
	cols int
	spec Spec
}

func newInline[T Scalar](capacity int, opts Options, checkAlignment bool) *Inline[T] {
	s := &Inline[T]{data: allocFixed[T](capacity, opts)}
	if checkAlignment {
		assertBufferAligned(s.data, capacity, opts)
	}
	return s
}

// Rows returns the current row count.
func (s *Inline[T]) Rows() int { return s.rows }

// Cols returns the current column count.
func (s *Inline[T]) Cols() int { return s.cols }

// Resize updates the dimension counters. The caller guarantees
// size <= capacity and size == rows*cols.
func (s *Inline[T]) Resize(size, rows, cols int) {
	debug.Assertf(size <= len(s.data),
		"resize to %d elements exceeds inline capacity %d", size, len(s.data))
	s.rows = rows
	s.cols = cols
}

// Swap exchanges buffer contents and counters with other, which must be an
// *Inline of the same capacity. O(capacity).
func (s *Inline[T]) Swap(other Storage[T]) {
	o := other.(*Inline[T])
	debug.Assertf(len(s.data) == len(o.data),
		"swap of inline storage with mismatched capacities %d and %d", len(s.data), len(o.data))
	for i := range s.data {
		s.data[i], o.data[i] = o.data[i], s.data[i]
	}
	s.rows, o.rows = o.rows, s.rows
	s.cols, o.cols = o.cols, s.cols
}

// Data returns the full capacity buffer.
func (s *Inline[T]) Data() []T { return s.data }

// Spec returns the shape declaration the storage was built from.
func (s *Inline[T]) Spec() Spec { return s.spec }

// InlineRows is dynamic-rows, fixed-cols storage bounded by a fixed capacity
// buffer. Only the row counter varies at runtime.
type InlineRows[T Scalar] struct {
	data []T
	rows int
	cols int // fixed
	spec Spec
}

func newInlineRows[T Scalar](capacity, cols int, opts Options, checkAlignment bool) *InlineRows[T] {
	s := &InlineRows[T]{data: allocFixed[T](capacity, opts), cols: cols}
	if checkAlignment {
		assertBufferAligned(s.data, capacity, opts)
	}
	return s
}

// Rows returns the current row count.
func (s *InlineRows[T]) Rows() int { return s.rows }

// Cols returns the fixed column count.
func (s *InlineRows[T]) Cols() int { return s.cols }

// Resize updates the row counter. The caller guarantees size <= capacity.
func (s *InlineRows[T]) Resize(size, rows, _ int) {
	debug.Assertf(size <= len(s.data),
		"resize to %d elements exceeds inline capacity %d", size, len(s.data))
	s.rows = rows
}

// Swap exchanges buffer contents and the row counter with other, which must
// be an *InlineRows of the same capacity. O(capacity).
func (s *InlineRows[T]) Swap(other Storage[T]) {
	o := other.(*InlineRows[T])
	debug.Assertf(len(s.data) == len(o.data),
		"swap of inline storage with mismatched capacities %d and %d", len(s.data), len(o.data))
	for i := range s.data {
		s.data[i], o.data[i] = o.data[i], s.data[i]
	}
	s.rows, o.rows = o.rows, s.rows
}

// Data returns the full capacity buffer.
func (s *InlineRows[T]) Data() []T { return s.data }

// Spec returns the shape declaration the storage was built from.
func (s *InlineRows[T]) Spec() Spec { return s.spec }

// InlineCols is fixed-rows, dynamic-cols storage bounded by a fixed capacity
// buffer. Only the column counter varies at runtime.
type InlineCols[T Scalar] struct {
	data []T
	rows int // fixed
	cols int
	spec Spec
}

func newInlineCols[T Scalar](capacity, rows int, opts Options, checkAlignment bool) *InlineCols[T] {
	s := &InlineCols[T]{data: allocFixed[T](capacity, opts), rows: rows}
	if checkAlignment {
		assertBufferAligned(s.data, capacity, opts)
	}
	return s
}

// Rows returns the fixed row count.
func (s *InlineCols[T]) Rows() int { return s.rows }

// Cols returns the current column count.
func (s *InlineCols[T]) Cols() int { return s.cols }

// Resize updates the column counter. The caller guarantees size <= capacity.
func (s *InlineCols[T]) Resize(size, _, cols int) {
	debug.Assertf(size <= len(s.data),
		"resize to %d elements exceeds inline capacity %d", size, len(s.data))
	s.cols = cols
}

// Swap exchanges buffer contents and the column counter with other, which
// must be an *InlineCols of the same capacity. O(capacity).
func (s *InlineCols[T]) Swap(other Storage[T]) {
	o := other.(*InlineCols[T])
	debug.Assertf(len(s.data) == len(o.data),
		"swap of inline storage with mismatched capacities %d and %d", len(s.data), len(o.data))
	for i := range s.data {
		s.data[i], o.data[i] = o.data[i], s.data[i]
	}
	s.cols, o.cols = o.cols, s.cols
}

// Data returns the full capacity buffer.
func (s *InlineCols[T]) Data() []T { return s.data }

// Spec returns the shape declaration the storage was built from.
func (s *InlineCols[T]) Spec() Spec { return s.spec }
